package allocate

import (
	"github.com/creatorly/upload-scheduling/internal/domain"
)

type ItemResult struct {
	ItemID         string             `json:"item_id"`
	Name           string             `json:"name"`
	Type           domain.ContentType `json:"type"`
	ScheduledDate  string             `json:"scheduled_date"`
	ScheduledTime  string             `json:"scheduled_time"`
	Conflict       bool               `json:"conflict"`
	ConflictReason string             `json:"conflict_reason,omitempty"`
}

type Summary struct {
	FirstUpload   string `json:"first_upload"`
	LastUpload    string `json:"last_upload"`
	TotalDaysUsed int    `json:"total_days_used"`
	ShortSlots    int    `json:"short_slots"`
	RegularSlots  int    `json:"regular_slots"`
	ConflictCount int    `json:"conflict_count"`
}

type Response struct {
	RunID   string       `json:"run_id"`
	Results []ItemResult `json:"results"`
	Summary Summary      `json:"summary"`
}
