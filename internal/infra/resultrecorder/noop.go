package resultrecorder

import (
	"context"

	"github.com/creatorly/upload-scheduling/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.AllocationResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordBatchResults(_ context.Context, _ []domain.AllocationResultRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
