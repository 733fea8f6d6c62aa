package domain

import (
	"context"
	"time"
)

// AllocationResultRecord captures the outcome of one allocation run for
// one calendar day, split by content type.
type AllocationResultRecord struct {
	RunID         string
	Day           time.Time
	ContentType   string
	Phase         string
	AssignedCount int
	ConflictCount int
	ForcedCount   int
}

// AllocationResultRecorder ships run outcomes to a time-series backend.
// A noop implementation stands in when recording is disabled.
type AllocationResultRecorder interface {
	RecordBatchResults(ctx context.Context, records []AllocationResultRecord) error
	Flush(ctx context.Context) error
	Close() error
}
