package domain

import "context"

//go:generate mockgen -source=schedule_repository.go -destination=schedule_repository_mock.go -package=domain

// ScheduleRepository persists committed day plans and the per-item
// assignment records used for idempotency checks.
type ScheduleRepository interface {
	SaveDayPlan(ctx context.Context, plan *DayPlan) error
	GetDayPlan(ctx context.Context, dayKey string) (*DayPlan, error)
	GetDayPlansInRange(ctx context.Context, startDayKey, endDayKey string) ([]*DayPlan, error)
	DeleteDayPlan(ctx context.Context, dayKey string) error
	SaveScheduledItem(ctx context.Context, item *ScheduledItem) error
	GetScheduledItem(ctx context.Context, itemID string) (*ScheduledItem, error)
	IsItemScheduled(ctx context.Context, itemID string) (bool, error)
}
