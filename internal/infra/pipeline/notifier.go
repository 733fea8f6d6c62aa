package pipeline

import "context"

//go:generate mockgen -source=notifier.go -destination=mock.go -package=pipeline

// Notifier hands committed assignments to the external processing
// pipeline so output files get tagged with their target date and time.
type Notifier interface {
	NotifyScheduled(ctx context.Context, task *ScheduledTask) error
}
