package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creatorly/upload-scheduling/internal/domain"
)

const (
	dayPlanKeyPrefix       = "schedule:plan:"
	scheduledItemKeyPrefix = "schedule:item:"

	// Committed plans reach up to a year ahead, keep them a little longer.
	dayPlanTTL       = 400 * 24 * time.Hour
	scheduledItemTTL = 400 * 24 * time.Hour
)

type scheduledItemRecord struct {
	ItemID         string `json:"item_id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Day            string `json:"day"`
	Slot           string `json:"slot"`
	Conflict       bool   `json:"conflict"`
	ConflictReason string `json:"conflict_reason,omitempty"`
}

type dayPlanRecord struct {
	DayKey       string                `json:"day_key"`
	Items        []scheduledItemRecord `json:"items"`
	PlannedAt    time.Time             `json:"planned_at"`
	TotalPlanned int                   `json:"total_planned"`
}

type scheduleRepository struct {
	client *redis.Client
}

func NewScheduleRepository(client *redis.Client) domain.ScheduleRepository {
	return &scheduleRepository{
		client: client,
	}
}

func (r *scheduleRepository) SaveDayPlan(ctx context.Context, plan *domain.DayPlan) error {
	if plan == nil {
		return ErrInvalidPlanData
	}

	record := dayPlanRecord{
		DayKey:       plan.DayKey,
		Items:        toItemRecords(plan.Items),
		PlannedAt:    plan.PlannedAt,
		TotalPlanned: plan.TotalPlanned,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidPlanData
	}

	return r.client.Set(ctx, dayPlanKeyPrefix+plan.DayKey, data, dayPlanTTL).Err()
}

func (r *scheduleRepository) GetDayPlan(ctx context.Context, dayKey string) (*domain.DayPlan, error) {
	data, err := r.client.Get(ctx, dayPlanKeyPrefix+dayKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDayPlanNotFound
		}
		return nil, err
	}

	var record dayPlanRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidPlanData
	}

	return &domain.DayPlan{
		DayKey:       record.DayKey,
		Items:        fromItemRecords(record.Items),
		PlannedAt:    record.PlannedAt,
		TotalPlanned: record.TotalPlanned,
	}, nil
}

func (r *scheduleRepository) GetDayPlansInRange(ctx context.Context, startDayKey, endDayKey string) ([]*domain.DayPlan, error) {
	pattern := dayPlanKeyPrefix + "*"
	plans := make([]*domain.DayPlan, 0)

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		dayKey := key[len(dayPlanKeyPrefix):]

		// Day keys are zero-padded ISO dates, so string order is date order.
		if dayKey >= startDayKey && dayKey <= endDayKey {
			plan, err := r.GetDayPlan(ctx, dayKey)
			if err != nil {
				if errors.Is(err, domain.ErrDayPlanNotFound) {
					continue
				}
				return nil, err
			}
			plans = append(plans, plan)
		}
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *scheduleRepository) DeleteDayPlan(ctx context.Context, dayKey string) error {
	plan, err := r.GetDayPlan(ctx, dayKey)
	if err != nil {
		if errors.Is(err, domain.ErrDayPlanNotFound) {
			return nil // Already deleted
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, dayPlanKeyPrefix+dayKey)
	for _, item := range plan.Items {
		pipe.Del(ctx, scheduledItemKeyPrefix+item.ItemID)
	}

	_, err = pipe.Exec(ctx)
	return err
}

func (r *scheduleRepository) SaveScheduledItem(ctx context.Context, item *domain.ScheduledItem) error {
	if item == nil {
		return ErrInvalidItemData
	}

	data, err := json.Marshal(toItemRecord(*item))
	if err != nil {
		return ErrInvalidItemData
	}

	return r.client.Set(ctx, scheduledItemKeyPrefix+item.ItemID, data, scheduledItemTTL).Err()
}

func (r *scheduleRepository) GetScheduledItem(ctx context.Context, itemID string) (*domain.ScheduledItem, error) {
	data, err := r.client.Get(ctx, scheduledItemKeyPrefix+itemID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrScheduledItemNotFound
		}
		return nil, err
	}

	var record scheduledItemRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidItemData
	}

	item := fromItemRecord(record)
	return &item, nil
}

func (r *scheduleRepository) IsItemScheduled(ctx context.Context, itemID string) (bool, error) {
	exists, err := r.client.Exists(ctx, scheduledItemKeyPrefix+itemID).Result()
	if err != nil {
		return false, err
	}

	return exists > 0, nil
}

func toItemRecord(item domain.ScheduledItem) scheduledItemRecord {
	return scheduledItemRecord{
		ItemID:         item.ItemID,
		Name:           item.Name,
		Type:           item.Type.String(),
		Day:            item.Day,
		Slot:           item.Slot,
		Conflict:       item.Conflict,
		ConflictReason: item.ConflictReason,
	}
}

func fromItemRecord(record scheduledItemRecord) domain.ScheduledItem {
	return domain.ScheduledItem{
		ItemID:         record.ItemID,
		Name:           record.Name,
		Type:           domain.ContentType(record.Type),
		Day:            record.Day,
		Slot:           record.Slot,
		Conflict:       record.Conflict,
		ConflictReason: record.ConflictReason,
	}
}

func toItemRecords(items []domain.ScheduledItem) []scheduledItemRecord {
	records := make([]scheduledItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, toItemRecord(item))
	}
	return records
}

func fromItemRecords(records []scheduledItemRecord) []domain.ScheduledItem {
	items := make([]domain.ScheduledItem, 0, len(records))
	for _, record := range records {
		items = append(items, fromItemRecord(record))
	}
	return items
}
