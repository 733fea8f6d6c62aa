package slotseq

import (
	"time"

	"github.com/creatorly/upload-scheduling/internal/domain"
)

// Generator expands an interval policy into the ordered per-day slot
// sequence the allocator walks.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// SlotsForDay returns the candidate times of one eligible day, in search
// order. The preferred start time always comes first; later slots wrap
// past midnight modulo 24h without spilling to the next day.
func (g *Generator) SlotsForDay(interval domain.IntervalPolicy, preferred domain.TimeOfDay) []domain.TimeOfDay {
	switch interval {
	case domain.Interval8h:
		return []domain.TimeOfDay{preferred, preferred.AddHours(8), preferred.AddHours(16)}
	case domain.Interval12h:
		return []domain.TimeOfDay{preferred, preferred.AddHours(12)}
	default:
		// 24h and 48h both offer a single daily slot
		return []domain.TimeOfDay{preferred}
	}
}

// IsDayEligible reports whether a day may carry slots at all. Only the
// 48h policy skips days: odd whole-day offsets from the start day are
// out, and skipped days never count against the search budget.
func (g *Generator) IsDayEligible(interval domain.IntervalPolicy, startDay, day time.Time) bool {
	if interval != domain.Interval48h {
		return true
	}
	return domain.DayOffset(startDay, day)%2 == 0
}
