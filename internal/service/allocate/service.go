package allocate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/creatorly/upload-scheduling/internal/domain"
	"github.com/creatorly/upload-scheduling/internal/observability/metrics"
	"github.com/creatorly/upload-scheduling/internal/service/slotseq"
)

type Service struct {
	slotSeq         *slotseq.Generator
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewService(slotSeq *slotseq.Generator, scheduleMetrics *metrics.ScheduleMetrics) *Service {
	return &Service{
		slotSeq:         slotSeq,
		scheduleMetrics: scheduleMetrics,
	}
}

// Allocate assigns a publishing slot to every item in the batch, in input
// order, against the shared occupancy index. The index accumulates each
// assignment, so later items see the slots earlier items claimed. A
// config error fails the whole batch before any item is touched.
func (s *Service) Allocate(
	ctx context.Context,
	items []*domain.ContentItem,
	index *domain.OccupancyIndex,
	cfg domain.BatchConfig,
	runID string,
	phase string,
) (*Response, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid batch config: %w", err)
	}

	slots := s.slotSeq.SlotsForDay(cfg.Interval, cfg.PreferredStart)

	slog.DebugContext(ctx, "starting allocation batch",
		slog.String("run_id", runID),
		slog.String("phase", phase),
		slog.Int("item_count", len(items)),
		slog.String("start_day", domain.DayKey(cfg.StartDay)),
		slog.String("interval", cfg.Interval.String()),
		slog.String("conflict_mode", cfg.ConflictMode.String()),
		slog.Int("horizon_days", cfg.HorizonDays),
	)

	results := make([]ItemResult, 0, len(items))
	conflictCount := 0

	for _, item := range items {
		s.allocateItem(ctx, item, index, cfg, slots)

		if s.scheduleMetrics != nil {
			s.scheduleMetrics.RecordTypeDistribution(ctx, item.Type.String())
			outcome := "assigned"
			if item.Conflict {
				outcome = "forced"
				s.scheduleMetrics.RecordConflictForced(ctx, item.Type.String())
			}
			s.scheduleMetrics.RecordItemProcessed(ctx, phase, item.Type.String(), outcome)
		}

		if item.Conflict {
			conflictCount++
			slog.WarnContext(ctx, "item force-assigned after exhausting search horizon",
				slog.String("item_id", item.ID),
				slog.String("type", item.Type.String()),
				slog.String("day", item.ScheduledDay),
				slog.String("slot", item.ScheduledSlot.String()),
			)
		}

		results = append(results, ItemResult{
			ItemID:         item.ID,
			Name:           item.Name,
			Type:           item.Type,
			ScheduledDate:  item.ScheduledDay,
			ScheduledTime:  item.ScheduledSlot.String(),
			Conflict:       item.Conflict,
			ConflictReason: item.ConflictReason,
		})
	}

	summary := buildSummary(items, conflictCount)

	slog.InfoContext(ctx, "allocation batch completed",
		slog.String("run_id", runID),
		slog.String("phase", phase),
		slog.Int("item_count", len(items)),
		slog.Int("conflict_count", conflictCount),
		slog.Int("total_days_used", summary.TotalDaysUsed),
	)

	return &Response{
		RunID:   runID,
		Results: results,
		Summary: summary,
	}, nil
}

// allocateItem walks the slot cursor forward from the batch start day
// until it finds a free same-type slot or spends the attempt budget.
// Ineligible days (48h parity) advance the cursor for free; only probes
// of occupied slots consume attempts.
func (s *Service) allocateItem(
	ctx context.Context,
	item *domain.ContentItem,
	index *domain.OccupancyIndex,
	cfg domain.BatchConfig,
	slots []domain.TimeOfDay,
) {
	day := cfg.StartDay
	slotIdx := 0
	attempts := 0

	for {
		if !s.slotSeq.IsDayEligible(cfg.Interval, cfg.StartDay, day) {
			day = domain.NextDay(day)
			slotIdx = 0
			continue
		}

		candidate := slots[slotIdx]

		if attempts >= cfg.HorizonDays {
			// Budget spent: take the cursor's current candidate anyway,
			// flag the collision, and leave the index untouched.
			item.ScheduledDay = domain.DayKey(day)
			item.ScheduledSlot = candidate
			item.Conflict = true
			item.ConflictReason = fmt.Sprintf("no free %s slot found: %d days searched",
				strings.ToUpper(item.Type.String()), cfg.HorizonDays)
			return
		}

		if cfg.ConflictMode == domain.ConflictForce {
			s.assign(item, index, day, candidate)
			return
		}

		if index.IsOccupied(day, candidate, item.Type) {
			attempts++
			slotIdx++
			if slotIdx >= len(slots) {
				slotIdx = 0
				day = domain.NextDay(day)
			}
			continue
		}

		s.assign(item, index, day, candidate)
		return
	}
}

func (s *Service) assign(item *domain.ContentItem, index *domain.OccupancyIndex, day time.Time, slot domain.TimeOfDay) {
	item.ScheduledDay = domain.DayKey(day)
	item.ScheduledSlot = slot
	index.MarkOccupied(day, slot, item.Type)
}

func buildSummary(items []*domain.ContentItem, conflictCount int) Summary {
	summary := Summary{ConflictCount: conflictCount}
	if len(items) == 0 {
		return summary
	}

	daysUsed := make(map[string]struct{})
	var firstDay, lastDay string
	var firstSlot, lastSlot domain.TimeOfDay

	for _, item := range items {
		if !item.Assigned() {
			continue
		}

		daysUsed[item.ScheduledDay] = struct{}{}
		if item.Type.IsShort() {
			summary.ShortSlots++
		} else {
			summary.RegularSlots++
		}

		if firstDay == "" || before(item.ScheduledDay, item.ScheduledSlot, firstDay, firstSlot) {
			firstDay, firstSlot = item.ScheduledDay, item.ScheduledSlot
		}
		if lastDay == "" || before(lastDay, lastSlot, item.ScheduledDay, item.ScheduledSlot) {
			lastDay, lastSlot = item.ScheduledDay, item.ScheduledSlot
		}
	}

	summary.TotalDaysUsed = len(daysUsed)
	if firstDay != "" {
		summary.FirstUpload = firstDay + " " + firstSlot.String()
		summary.LastUpload = lastDay + " " + lastSlot.String()
	}
	return summary
}

// before orders assignments by day key, then time of day. Day keys sort
// lexically because they are zero-padded ISO dates.
func before(dayA string, slotA domain.TimeOfDay, dayB string, slotB domain.TimeOfDay) bool {
	if dayA != dayB {
		return dayA < dayB
	}
	return slotA < slotB
}
