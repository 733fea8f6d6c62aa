package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorly/upload-scheduling/internal/domain"
)

// PlanHandler exposes committed day plans for inspection and rollback.
type PlanHandler struct {
	scheduleRepo domain.ScheduleRepository
}

func NewPlanHandler(scheduleRepo domain.ScheduleRepository) *PlanHandler {
	return &PlanHandler{scheduleRepo: scheduleRepo}
}

func (h *PlanHandler) HandleGetDayPlan(c *gin.Context) {
	ctx := c.Request.Context()

	dayKey := c.Param("day")
	if _, err := domain.ParseDayKey(dayKey); err != nil {
		respondError(c, http.StatusBadRequest, "invalid day, expected YYYY-MM-DD")
		return
	}

	plan, err := h.scheduleRepo.GetDayPlan(ctx, dayKey)
	if err != nil {
		if errors.Is(err, domain.ErrDayPlanNotFound) {
			respondError(c, http.StatusNotFound, "no plan for "+dayKey)
			return
		}
		slog.ErrorContext(ctx, "failed to load day plan",
			slog.String("day_key", dayKey),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, plan)
}

// HandleDeleteDayPlan drops a committed plan and its item records so the
// day's slots become allocatable again.
func (h *PlanHandler) HandleDeleteDayPlan(c *gin.Context) {
	ctx := c.Request.Context()

	dayKey := c.Param("day")
	if _, err := domain.ParseDayKey(dayKey); err != nil {
		respondError(c, http.StatusBadRequest, "invalid day, expected YYYY-MM-DD")
		return
	}

	if err := h.scheduleRepo.DeleteDayPlan(ctx, dayKey); err != nil {
		slog.ErrorContext(ctx, "failed to delete day plan",
			slog.String("day_key", dayKey),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	slog.InfoContext(ctx, "day plan deleted",
		slog.String("day_key", dayKey),
	)
	c.Status(http.StatusNoContent)
}
