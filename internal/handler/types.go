package handler

import (
	"github.com/creatorly/upload-scheduling/internal/service/allocate"
	"github.com/creatorly/upload-scheduling/internal/service/schedule"
)

type scheduleItemRequest struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	DurationSeconds float64 `json:"duration_seconds"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
}

type scheduleConfigRequest struct {
	StartDate          string `json:"start_date"`
	StartMode          string `json:"start_mode"`
	Interval           string `json:"interval"`
	PreferredStartTime string `json:"preferred_start_time"`
	ConflictMode       string `json:"conflict_mode"`
	HorizonDays        int    `json:"horizon_days"`
}

type scheduleRequest struct {
	Items  []scheduleItemRequest  `json:"items"`
	Config *scheduleConfigRequest `json:"config"`
}

type scheduleResponse struct {
	RunID   string                `json:"run_id"`
	Results []allocate.ItemResult `json:"results"`
	Summary allocate.Summary      `json:"summary"`
	Commit  *schedule.Response    `json:"commit"`
}
