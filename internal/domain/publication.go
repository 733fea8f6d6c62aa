package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=publication.go -destination=publication_source_mock.go -package=domain

// Publication is one already-published item as reported by a snapshot
// source. Width/Height/DurationSeconds feed the type classifier when the
// source does not carry an explicit type.
type Publication struct {
	ID              string
	Title           string
	PublishedAt     time.Time
	DurationSeconds float64
	Width           int
	Height          int
}

// PublicationSource yields the published items since a given instant.
// Implementations: content-library HTTP client, archive database.
type PublicationSource interface {
	PublishedSince(ctx context.Context, since time.Time) ([]Publication, error)
}
