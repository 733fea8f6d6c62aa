package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/creatorly/upload-scheduling/internal/config"
	"github.com/creatorly/upload-scheduling/internal/domain"
	"github.com/creatorly/upload-scheduling/internal/observability/metrics"
	"github.com/creatorly/upload-scheduling/internal/observability/tracing"
	"github.com/creatorly/upload-scheduling/internal/service/allocate"
	"github.com/creatorly/upload-scheduling/internal/service/classify"
	"github.com/creatorly/upload-scheduling/internal/service/schedule"
	"github.com/creatorly/upload-scheduling/internal/service/snapshot"
)

type ScheduleHandler struct {
	snapshotLoader  *snapshot.Loader
	allocateService *allocate.Service
	scheduleService *schedule.Service
	classifier      *classify.Classifier
	config          *config.Config
	scheduleMetrics *metrics.ScheduleMetrics
	resultRecorder  domain.AllocationResultRecorder
}

func NewScheduleHandler(
	snapshotLoader *snapshot.Loader,
	allocateService *allocate.Service,
	scheduleService *schedule.Service,
	classifier *classify.Classifier,
	cfg *config.Config,
	scheduleMetrics *metrics.ScheduleMetrics,
	resultRecorder domain.AllocationResultRecorder,
) *ScheduleHandler {
	return &ScheduleHandler{
		snapshotLoader:  snapshotLoader,
		allocateService: allocateService,
		scheduleService: scheduleService,
		classifier:      classifier,
		config:          cfg,
		scheduleMetrics: scheduleMetrics,
		resultRecorder:  resultRecorder,
	}
}

// HandlePreview runs an allocation without committing anything: no
// persistence, no pipeline notification, no occupancy left behind.
func (h *ScheduleHandler) HandlePreview(c *gin.Context) {
	ctx := c.Request.Context()

	now, ok := h.resolveNow(c)
	if !ok {
		return
	}

	items, batchCfg, ok := h.parseRequest(c, now)
	if !ok {
		return
	}

	runID := h.resolveRunID(c)

	index := h.loadSnapshot(c, now)

	result, ok := h.runAllocation(c, items, index, batchCfg, runID, "preview")
	if !ok {
		return
	}

	h.recordResults(ctx, runID, "preview", result)

	c.JSON(http.StatusOK, result)
}

// HandleSchedule runs an allocation and commits the assignments: each
// item is handed to the processing pipeline and the resulting day plans
// are persisted for future runs to see.
func (h *ScheduleHandler) HandleSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	now, ok := h.resolveNow(c)
	if !ok {
		return
	}

	items, batchCfg, ok := h.parseRequest(c, now)
	if !ok {
		return
	}

	runID := h.resolveRunID(c)

	index := h.loadSnapshot(c, now)

	result, ok := h.runAllocation(c, items, index, batchCfg, runID, "allocation")
	if !ok {
		return
	}

	commitCtx, commitSpan := tracing.StartCommitSpan(ctx, runID, len(items))
	commitStartTime := time.Now()

	commitResult, err := h.scheduleService.Commit(commitCtx, items, runID)

	if h.scheduleMetrics != nil {
		h.scheduleMetrics.RecordCommitPhaseDuration(commitCtx, time.Since(commitStartTime))
	}

	if err != nil {
		if commitResult != nil {
			tracing.RecordCommitResult(commitSpan, len(commitResult.Results), commitResult.CommittedCount, commitResult.FailedCount, commitResult.SkippedCount, err)
		} else {
			tracing.RecordCommitResult(commitSpan, 0, 0, 0, 0, err)
		}
		commitSpan.End()
		slog.ErrorContext(ctx, "commit phase failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	tracing.RecordCommitResult(commitSpan, len(commitResult.Results), commitResult.CommittedCount, commitResult.FailedCount, commitResult.SkippedCount, nil)
	commitSpan.End()

	h.recordResults(ctx, runID, "commit", result)

	c.JSON(http.StatusOK, scheduleResponse{
		RunID:   runID,
		Results: result.Results,
		Summary: result.Summary,
		Commit:  commitResult,
	})
}

// resolveNow pins "today" for the run, honoring the virtual-time query
// override used by tests and backfills.
func (h *ScheduleHandler) resolveNow(c *gin.Context) (time.Time, bool) {
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid from time format, expected RFC3339")
			return time.Time{}, false
		}
		slog.InfoContext(c.Request.Context(), "using virtual time",
			slog.Time("virtual_now", parsed),
		)
		return parsed, true
	}
	return time.Now().UTC(), true
}

func (h *ScheduleHandler) resolveRunID(c *gin.Context) string {
	if runID := c.GetHeader("X-Run-ID"); runID != "" {
		return runID
	}
	return uuid.NewString()
}

func (h *ScheduleHandler) parseRequest(c *gin.Context, now time.Time) ([]*domain.ContentItem, domain.BatchConfig, bool) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, domain.BatchConfig{}, false
	}

	if len(req.Items) == 0 {
		respondError(c, http.StatusBadRequest, "items must not be empty")
		return nil, domain.BatchConfig{}, false
	}

	batchCfg, err := h.buildBatchConfig(req.Config, now)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return nil, domain.BatchConfig{}, false
	}

	// Reject a malformed config before any item or snapshot work.
	if err := batchCfg.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return nil, domain.BatchConfig{}, false
	}

	items := make([]*domain.ContentItem, 0, len(req.Items))
	for _, ir := range req.Items {
		id := ir.ID
		if id == "" {
			id = uuid.NewString()
		}

		var contentType domain.ContentType
		if ir.Type == "" {
			contentType = h.classifier.ClassifyItem(ir.Width, ir.Height, ir.DurationSeconds)
		} else {
			parsed, err := domain.ParseContentType(ir.Type)
			if err != nil {
				respondError(c, http.StatusBadRequest, fmt.Sprintf("item %s: %s", id, err.Error()))
				return nil, domain.BatchConfig{}, false
			}
			contentType = parsed
		}

		items = append(items, domain.NewContentItem(id, ir.Name, contentType, ir.DurationSeconds))
	}

	return items, batchCfg, true
}

// buildBatchConfig merges per-request overrides onto the configured
// defaults. Values that need parsing are checked here; enum validity is
// covered by BatchConfig.Validate.
func (h *ScheduleHandler) buildBatchConfig(req *scheduleConfigRequest, now time.Time) (domain.BatchConfig, error) {
	defaults := h.config.Schedule

	cfg := domain.BatchConfig{
		StartMode:      domain.StartNextAvailable,
		Interval:       defaults.Interval,
		PreferredStart: defaults.PreferredStart,
		ConflictMode:   defaults.ConflictMode,
		HorizonDays:    defaults.HorizonDays,
	}

	if req != nil {
		if req.StartDate != "" {
			day, err := domain.ParseDayKey(req.StartDate)
			if err != nil {
				return domain.BatchConfig{}, fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", req.StartDate)
			}
			cfg.StartDay = day
			cfg.StartMode = domain.StartSpecificDate
		}
		if req.StartMode != "" {
			cfg.StartMode = domain.StartMode(req.StartMode)
		}
		if req.Interval != "" {
			cfg.Interval = domain.IntervalPolicy(req.Interval)
		}
		if req.PreferredStartTime != "" {
			slot, err := domain.ParseTimeOfDay(req.PreferredStartTime)
			if err != nil {
				return domain.BatchConfig{}, fmt.Errorf("invalid preferred_start_time %q, expected HH:MM", req.PreferredStartTime)
			}
			cfg.PreferredStart = slot
		}
		if req.ConflictMode != "" {
			cfg.ConflictMode = domain.ConflictMode(req.ConflictMode)
		}
		if req.HorizonDays != 0 {
			cfg.HorizonDays = req.HorizonDays
		}
	}

	cfg.StartDay = cfg.ResolveStartDay(now)

	return cfg, nil
}

func (h *ScheduleHandler) loadSnapshot(c *gin.Context, now time.Time) *domain.OccupancyIndex {
	ctx, span := tracing.StartSnapshotSpan(c.Request.Context(), now)
	defer span.End()

	index := h.snapshotLoader.Load(ctx, now)
	tracing.RecordSnapshotResult(span, index.SlotCount(), index.DayCount())
	return index
}

func (h *ScheduleHandler) runAllocation(
	c *gin.Context,
	items []*domain.ContentItem,
	index *domain.OccupancyIndex,
	cfg domain.BatchConfig,
	runID string,
	phase string,
) (*allocate.Response, bool) {
	ctx, span := tracing.StartAllocationSpan(c.Request.Context(), runID, len(items), cfg.Interval.String(), cfg.ConflictMode.String())
	startTime := time.Now()

	result, err := h.allocateService.Allocate(ctx, items, index, cfg, runID, phase)

	if h.scheduleMetrics != nil {
		h.scheduleMetrics.RecordAllocationPhaseDuration(ctx, time.Since(startTime))
	}

	if err != nil {
		tracing.RecordAllocationResult(span, 0, 0, 0, err)
		span.End()
		respondError(c, http.StatusBadRequest, err.Error())
		return nil, false
	}

	assigned := len(result.Results) - result.Summary.ConflictCount
	tracing.RecordAllocationResult(span, assigned, result.Summary.ConflictCount, result.Summary.TotalDaysUsed, nil)
	span.End()

	return result, true
}

func (h *ScheduleHandler) recordResults(ctx context.Context, runID, phase string, result *allocate.Response) {
	if h.resultRecorder == nil || len(result.Results) == 0 {
		return
	}

	records := buildAllocationRecords(runID, phase, result)
	if err := h.resultRecorder.RecordBatchResults(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record allocation results",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}
}

type dayTypeCounts struct {
	assigned int
	conflict int
	forced   int
}

// buildAllocationRecords aggregates per-item outcomes into one record
// per (day, content type) pair.
func buildAllocationRecords(runID, phase string, result *allocate.Response) []domain.AllocationResultRecord {
	counts := make(map[string]map[string]*dayTypeCounts)

	for _, item := range result.Results {
		if item.ScheduledDate == "" {
			continue
		}
		contentType := item.Type.String()
		if counts[item.ScheduledDate] == nil {
			counts[item.ScheduledDate] = make(map[string]*dayTypeCounts)
		}
		if counts[item.ScheduledDate][contentType] == nil {
			counts[item.ScheduledDate][contentType] = &dayTypeCounts{}
		}
		c := counts[item.ScheduledDate][contentType]
		if item.Conflict {
			c.conflict++
			c.forced++
		} else {
			c.assigned++
		}
	}

	var records []domain.AllocationResultRecord
	for dayKey, typeMap := range counts {
		day, err := domain.ParseDayKey(dayKey)
		if err != nil {
			continue
		}
		for contentType, c := range typeMap {
			records = append(records, domain.AllocationResultRecord{
				RunID:         runID,
				Day:           day,
				ContentType:   contentType,
				Phase:         phase,
				AssignedCount: c.assigned,
				ConflictCount: c.conflict,
				ForcedCount:   c.forced,
			})
		}
	}

	return records
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error":   "processing_error",
		"message": message,
	})
}
