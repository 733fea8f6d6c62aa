package schedule

import (
	"github.com/creatorly/upload-scheduling/internal/domain"
)

type ResultItem struct {
	ItemID         string             `json:"item_id"`
	Name           string             `json:"name"`
	Type           domain.ContentType `json:"type"`
	ScheduledDate  string             `json:"scheduled_date"`
	ScheduledTime  string             `json:"scheduled_time"`
	Conflict       bool               `json:"conflict"`
	ConflictReason string             `json:"conflict_reason,omitempty"`
	Skipped        bool               `json:"skipped"`
	SkipReason     string             `json:"skip_reason,omitempty"`
	Success        bool               `json:"success"`
	Error          string             `json:"error,omitempty"`
}

type Response struct {
	CommittedCount int          `json:"committed_count"`
	SkippedCount   int          `json:"skipped_count"`
	FailedCount    int          `json:"failed_count"`
	Results        []ResultItem `json:"results"`
}
