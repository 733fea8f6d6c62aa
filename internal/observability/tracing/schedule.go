package tracing

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const scheduleTracerName = "github.com/creatorly/upload-scheduling/internal/service/allocate"

func ScheduleTracer() trace.Tracer {
	return otel.Tracer(scheduleTracerName)
}

func StartSnapshotSpan(ctx context.Context, now time.Time) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.snapshot",
		trace.WithAttributes(
			attribute.String("snapshot.now", now.Format(time.RFC3339)),
		),
	)
}

func StartAllocationSpan(ctx context.Context, runID string, itemCount int, interval, conflictMode string) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.allocation_phase",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("batch.item_count", itemCount),
			attribute.String("batch.interval", interval),
			attribute.String("batch.conflict_mode", conflictMode),
		),
	)
}

func StartCommitSpan(ctx context.Context, runID string, itemCount int) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.commit_phase",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("batch.item_count", itemCount),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordSnapshotResult(span trace.Span, slotCount, dayCount int) {
	span.SetAttributes(
		attribute.Int("snapshot.slot_count", slotCount),
		attribute.Int("snapshot.day_count", dayCount),
	)
	span.SetStatus(codes.Ok, "")
}

func RecordAllocationResult(span trace.Span, assignedCount, conflictCount, daysUsed int, err error) {
	span.SetAttributes(
		attribute.Int("allocation.assigned_count", assignedCount),
		attribute.Int("allocation.conflict_count", conflictCount),
		attribute.Int("allocation.days_used", daysUsed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordCommitResult(span trace.Span, processedCount, successCount, failedCount, skippedCount int, err error) {
	span.SetAttributes(
		attribute.Int("commit.processed_count", processedCount),
		attribute.Int("commit.success_count", successCount),
		attribute.Int("commit.failed_count", failedCount),
		attribute.Int("commit.skipped_count", skippedCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

// InjectToHTTPRequest propagates the current trace context onto an
// outgoing request so downstream services join the same trace.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
