package library

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/creatorly/upload-scheduling/internal/domain"
	"github.com/creatorly/upload-scheduling/internal/observability/logging"
	"github.com/creatorly/upload-scheduling/internal/observability/tracing"
)

// Client fetches the published-video snapshot from the content library
// service. Calls are single-attempt; snapshot consumers degrade on error.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) PublishedSince(ctx context.Context, since time.Time) ([]domain.Publication, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/api/v1/videos/published"
	q := u.Query()
	q.Set("since", since.Format(time.RFC3339))
	u.RawQuery = q.Encode()

	slog.DebugContext(ctx, "fetching published videos from content library",
		slog.String("url", u.String()),
	)

	ctx, span := tracing.StartExternalAPISpan(ctx, "published_videos", u.String())
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to content library",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "unexpected status code from content library",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var videosResp publishedVideosResponse
	if err := json.Unmarshal(body, &videosResp); err != nil {
		slog.ErrorContext(ctx, "failed to decode response from content library",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	publications := make([]domain.Publication, 0, len(videosResp.Videos))
	for _, v := range videosResp.Videos {
		publications = append(publications, domain.Publication{
			ID:              v.ID,
			Title:           v.Title,
			PublishedAt:     v.PublishedAt,
			DurationSeconds: v.DurationSeconds,
			Width:           v.Width,
			Height:          v.Height,
		})
	}

	slog.DebugContext(ctx, "successfully fetched published videos",
		slog.Int("count", len(publications)),
	)

	return publications, nil
}
