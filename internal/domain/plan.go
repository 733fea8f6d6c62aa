package domain

import (
	"time"
)

// ScheduledItem is one committed assignment inside a day plan.
type ScheduledItem struct {
	ItemID         string      `json:"item_id"`
	Name           string      `json:"name"`
	Type           ContentType `json:"type"`
	Day            string      `json:"day"`
	Slot           string      `json:"slot"`
	Conflict       bool        `json:"conflict"`
	ConflictReason string      `json:"conflict_reason,omitempty"`
}

// DayPlan groups the assignments committed for one calendar day.
type DayPlan struct {
	DayKey       string          `json:"day_key"`
	Items        []ScheduledItem `json:"items"`
	PlannedAt    time.Time       `json:"planned_at"`
	TotalPlanned int             `json:"total_planned"`
}

func NewDayPlan(dayKey string) *DayPlan {
	return &DayPlan{
		DayKey:       dayKey,
		Items:        make([]ScheduledItem, 0),
		PlannedAt:    time.Now().UTC(),
		TotalPlanned: 0,
	}
}

func (p *DayPlan) AddItem(item ScheduledItem) {
	p.Items = append(p.Items, item)
	p.TotalPlanned = len(p.Items)
}

func NewScheduledItem(item *ContentItem) ScheduledItem {
	return ScheduledItem{
		ItemID:         item.ID,
		Name:           item.Name,
		Type:           item.Type,
		Day:            item.ScheduledDay,
		Slot:           item.ScheduledSlot.String(),
		Conflict:       item.Conflict,
		ConflictReason: item.ConflictReason,
	}
}
