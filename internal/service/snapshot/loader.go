package snapshot

import (
	"context"
	"log/slog"
	"time"

	"github.com/creatorly/upload-scheduling/internal/domain"
	"github.com/creatorly/upload-scheduling/internal/service/classify"
)

// Loader builds the occupancy index an allocation run starts from. Past
// publications come from the configured source; committed-but-unpublished
// plans come from the schedule repository. Both collaborators are
// optional: a missing or failing source degrades to whatever the other
// one provides, down to an empty index.
type Loader struct {
	source        domain.PublicationSource
	scheduleRepo  domain.ScheduleRepository
	classifier    *classify.Classifier
	lookbackDays  int
	lookaheadDays int
}

func NewLoader(
	source domain.PublicationSource,
	scheduleRepo domain.ScheduleRepository,
	classifier *classify.Classifier,
	lookbackDays int,
	lookaheadDays int,
) *Loader {
	return &Loader{
		source:        source,
		scheduleRepo:  scheduleRepo,
		classifier:    classifier,
		lookbackDays:  lookbackDays,
		lookaheadDays: lookaheadDays,
	}
}

// Load assembles a fresh index for one run. It never fails: source errors
// are logged and the affected seed data is simply absent.
func (l *Loader) Load(ctx context.Context, now time.Time) *domain.OccupancyIndex {
	index := domain.NewOccupancyIndex()

	l.ingestPublications(ctx, index, now)
	l.ingestCommittedPlans(ctx, index, now)

	slog.DebugContext(ctx, "occupancy index loaded",
		slog.Int("day_count", index.DayCount()),
		slog.Int("slot_count", index.SlotCount()),
	)

	return index
}

func (l *Loader) ingestPublications(ctx context.Context, index *domain.OccupancyIndex, now time.Time) {
	if l.source == nil {
		slog.WarnContext(ctx, "no publication source configured, starting from an empty calendar")
		return
	}

	since := now.AddDate(0, 0, -l.lookbackDays)
	publications, err := l.source.PublishedSince(ctx, since)
	if err != nil {
		slog.WarnContext(ctx, "failed to load publication snapshot, continuing without it",
			slog.String("error", err.Error()),
			slog.Time("since", since),
		)
		return
	}

	for _, pub := range publications {
		contentType := l.classifier.Classify(pub)
		index.Ingest(pub.PublishedAt, contentType)
	}

	slog.DebugContext(ctx, "ingested publication snapshot",
		slog.Int("publication_count", len(publications)),
	)
}

func (l *Loader) ingestCommittedPlans(ctx context.Context, index *domain.OccupancyIndex, now time.Time) {
	if l.scheduleRepo == nil {
		return
	}

	startKey := domain.DayKey(domain.DayOf(now))
	endKey := domain.DayKey(domain.DayOf(now).AddDate(0, 0, l.lookaheadDays))
	plans, err := l.scheduleRepo.GetDayPlansInRange(ctx, startKey, endKey)
	if err != nil {
		slog.WarnContext(ctx, "failed to load committed plans, continuing without them",
			slog.String("error", err.Error()),
		)
		return
	}

	planned := 0
	for _, plan := range plans {
		day, err := domain.ParseDayKey(plan.DayKey)
		if err != nil {
			slog.WarnContext(ctx, "skipping plan with malformed day key",
				slog.String("day_key", plan.DayKey),
			)
			continue
		}
		for _, item := range plan.Items {
			slot, err := domain.ParseTimeOfDay(item.Slot)
			if err != nil {
				slog.WarnContext(ctx, "skipping scheduled item with malformed slot",
					slog.String("item_id", item.ItemID),
					slog.String("slot", item.Slot),
				)
				continue
			}
			index.MarkOccupied(day, slot, item.Type)
			planned++
		}
	}

	slog.DebugContext(ctx, "ingested committed plans",
		slog.Int("plan_count", len(plans)),
		slog.Int("planned_item_count", planned),
	)
}
