package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/creatorly/upload-scheduling/internal/domain"
	"github.com/creatorly/upload-scheduling/internal/infra/pipeline"
	"github.com/creatorly/upload-scheduling/internal/observability/metrics"
)

// Service persists the assignments of one allocation run and hands them
// to the processing pipeline. The repository and notifier are optional:
// without a repository nothing is persisted (and idempotency checks are
// skipped), without a notifier the pipeline step is a logged no-op.
type Service struct {
	scheduleRepo    domain.ScheduleRepository
	notifier        pipeline.Notifier
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewService(
	scheduleRepo domain.ScheduleRepository,
	notifier pipeline.Notifier,
	scheduleMetrics *metrics.ScheduleMetrics,
) *Service {
	return &Service{
		scheduleRepo:    scheduleRepo,
		notifier:        notifier,
		scheduleMetrics: scheduleMetrics,
	}
}

// Commit writes the enriched items of a completed allocation run. A
// pipeline failure aborts the batch with the partial response, flushing
// the day plans of items already committed; storage failures only warn,
// since the pipeline already holds the assignment.
func (s *Service) Commit(ctx context.Context, items []*domain.ContentItem, runID string) (*Response, error) {
	results := make([]ResultItem, 0, len(items))
	committedCount := 0
	skippedCount := 0
	failedCount := 0

	plansByDay := make(map[string]*domain.DayPlan)

	for _, item := range items {
		result := ResultItem{
			ItemID:         item.ID,
			Name:           item.Name,
			Type:           item.Type,
			ScheduledDate:  item.ScheduledDay,
			ScheduledTime:  item.ScheduledSlot.String(),
			Conflict:       item.Conflict,
			ConflictReason: item.ConflictReason,
			Success:        true,
		}

		// Idempotency: an item committed by an earlier run keeps its slot.
		if s.scheduleRepo != nil {
			scheduled, err := s.scheduleRepo.IsItemScheduled(ctx, item.ID)
			if err != nil {
				slog.WarnContext(ctx, "failed to check scheduled status",
					slog.String("item_id", item.ID),
					slog.String("error", err.Error()),
				)
			} else if scheduled {
				slog.DebugContext(ctx, "skipping already scheduled item",
					slog.String("item_id", item.ID),
				)
				result.Skipped = true
				result.SkipReason = "already scheduled"
				skippedCount++
				if s.scheduleMetrics != nil {
					s.scheduleMetrics.RecordItemProcessed(ctx, "commit", item.Type.String(), "skipped")
				}
				results = append(results, result)
				continue
			}
		}

		if err := s.notifyPipeline(ctx, item, runID); err != nil {
			slog.ErrorContext(ctx, "failed to notify pipeline",
				slog.String("item_id", item.ID),
				slog.String("error", err.Error()),
			)
			result.Success = false
			result.Error = err.Error()
			failedCount++
			if s.scheduleMetrics != nil {
				s.scheduleMetrics.RecordItemProcessed(ctx, "commit", item.Type.String(), "failed")
			}
			results = append(results, result)
			// Items committed before the failure are already in the
			// pipeline; persist their day plans so future snapshots see
			// the slots as taken.
			s.saveDayPlans(ctx, plansByDay)
			return &Response{
				CommittedCount: committedCount,
				SkippedCount:   skippedCount,
				FailedCount:    failedCount,
				Results:        results,
			}, fmt.Errorf("failed to notify pipeline for item %s: %w", item.ID, err)
		}

		scheduled := domain.NewScheduledItem(item)
		if s.scheduleRepo != nil {
			if err := s.scheduleRepo.SaveScheduledItem(ctx, &scheduled); err != nil {
				slog.WarnContext(ctx, "failed to save scheduled item",
					slog.String("item_id", item.ID),
					slog.String("error", err.Error()),
				)
				// Continue
			}
		}

		if _, ok := plansByDay[item.ScheduledDay]; !ok {
			plansByDay[item.ScheduledDay] = domain.NewDayPlan(item.ScheduledDay)
		}
		plansByDay[item.ScheduledDay].AddItem(scheduled)

		committedCount++
		if s.scheduleMetrics != nil {
			s.scheduleMetrics.RecordItemProcessed(ctx, "commit", item.Type.String(), "success")
		}
		results = append(results, result)
	}

	s.saveDayPlans(ctx, plansByDay)

	slog.InfoContext(ctx, "commit phase completed",
		slog.String("run_id", runID),
		slog.Int("committed_count", committedCount),
		slog.Int("skipped_count", skippedCount),
		slog.Int("failed_count", failedCount),
	)

	return &Response{
		CommittedCount: committedCount,
		SkippedCount:   skippedCount,
		FailedCount:    failedCount,
		Results:        results,
	}, nil
}

func (s *Service) saveDayPlans(ctx context.Context, plansByDay map[string]*domain.DayPlan) {
	if s.scheduleRepo == nil {
		return
	}
	for _, plan := range plansByDay {
		if err := s.scheduleRepo.SaveDayPlan(ctx, plan); err != nil {
			slog.WarnContext(ctx, "failed to save day plan",
				slog.String("day_key", plan.DayKey),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *Service) notifyPipeline(ctx context.Context, item *domain.ContentItem, runID string) error {
	if s.notifier == nil {
		slog.WarnContext(ctx, "pipeline notifier not configured, skipping notification",
			slog.String("item_id", item.ID),
		)
		return nil
	}

	return s.notifier.NotifyScheduled(ctx, &pipeline.ScheduledTask{
		ItemID:      item.ID,
		Name:        item.Name,
		ContentType: item.Type.String(),
		PublishDate: item.ScheduledDay,
		PublishTime: item.ScheduledSlot.String(),
		RunID:       runID,
		Conflict:    item.Conflict,
	})
}
