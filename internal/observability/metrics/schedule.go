package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	scheduleMeterName = "schedule.service"
)

type ScheduleMetrics struct {
	itemsProcessed          metric.Int64Counter
	conflictsForced         metric.Int64Counter
	allocationPhaseDuration metric.Float64Histogram
	commitPhaseDuration     metric.Float64Histogram
	typeDistribution        metric.Int64Counter
}

func NewScheduleMetrics() (*ScheduleMetrics, error) {
	meter := otel.Meter(scheduleMeterName)

	itemsProcessed, err := meter.Int64Counter(
		"schedule_items_total",
		metric.WithDescription("Total number of content items processed"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, err
	}

	conflictsForced, err := meter.Int64Counter(
		"schedule_conflicts_forced_total",
		metric.WithDescription("Total number of items force-assigned after search exhaustion"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, err
	}

	allocationPhaseDuration, err := meter.Float64Histogram(
		"schedule_allocation_phase_duration_seconds",
		metric.WithDescription("Allocation phase duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
		),
	)
	if err != nil {
		return nil, err
	}

	commitPhaseDuration, err := meter.Float64Histogram(
		"schedule_commit_phase_duration_seconds",
		metric.WithDescription("Commit phase duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	typeDistribution, err := meter.Int64Counter(
		"schedule_type_distribution_total",
		metric.WithDescription("Distribution of items across content types"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, err
	}

	return &ScheduleMetrics{
		itemsProcessed:          itemsProcessed,
		conflictsForced:         conflictsForced,
		allocationPhaseDuration: allocationPhaseDuration,
		commitPhaseDuration:     commitPhaseDuration,
		typeDistribution:        typeDistribution,
	}, nil
}

func (m *ScheduleMetrics) RecordItemProcessed(ctx context.Context, phase, contentType, outcome string) {
	m.itemsProcessed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("phase", phase),
		attribute.String("content_type", contentType),
		attribute.String("outcome", outcome),
	))
}

func (m *ScheduleMetrics) RecordConflictForced(ctx context.Context, contentType string) {
	m.conflictsForced.Add(ctx, 1, metric.WithAttributes(
		attribute.String("content_type", contentType),
	))
}

func (m *ScheduleMetrics) RecordAllocationPhaseDuration(ctx context.Context, duration time.Duration) {
	m.allocationPhaseDuration.Record(ctx, duration.Seconds())
}

func (m *ScheduleMetrics) RecordCommitPhaseDuration(ctx context.Context, duration time.Duration) {
	m.commitPhaseDuration.Record(ctx, duration.Seconds())
}

func (m *ScheduleMetrics) RecordTypeDistribution(ctx context.Context, contentType string) {
	m.typeDistribution.Add(ctx, 1, metric.WithAttributes(
		attribute.String("content_type", contentType),
	))
}
