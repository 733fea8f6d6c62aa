package library

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_PublishedSince(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/videos/published" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("since"); got != since.Format(time.RFC3339) {
			t.Errorf("since = %q, want %q", got, since.Format(time.RFC3339))
		}
		if r.Header.Get("x-request-id") == "" {
			t.Error("missing x-request-id header")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"videos": [
				{"id": "v1", "title": "teaser", "published_at": "2026-03-14T19:00:00Z", "duration_seconds": 45, "width": 1080, "height": 1920},
				{"id": "v2", "title": "episode", "published_at": "2026-03-15T07:00:00Z", "duration_seconds": 900, "width": 1920, "height": 1080}
			],
			"count": 2
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	publications, err := client.PublishedSince(context.Background(), since)
	if err != nil {
		t.Fatalf("PublishedSince() unexpected error: %v", err)
	}

	if len(publications) != 2 {
		t.Fatalf("got %d publications, want 2", len(publications))
	}
	if publications[0].ID != "v1" || publications[0].Width != 1080 || publications[0].Height != 1920 {
		t.Errorf("first publication = %+v", publications[0])
	}
	want := time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC)
	if !publications[1].PublishedAt.Equal(want) {
		t.Errorf("PublishedAt = %v, want %v", publications[1].PublishedAt, want)
	}
}

func TestClient_PublishedSinceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.PublishedSince(context.Background(), time.Now()); err == nil {
		t.Fatal("PublishedSince() expected error on 500")
	}
}

func TestClient_PublishedSinceMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.PublishedSince(context.Background(), time.Now()); err == nil {
		t.Fatal("PublishedSince() expected error on malformed body")
	}
}
