package domain

import (
	"fmt"
	"time"
)

// IntervalPolicy controls how many slots each day offers and how far
// apart they sit.
type IntervalPolicy string

const (
	Interval8h  IntervalPolicy = "8h"
	Interval12h IntervalPolicy = "12h"
	Interval24h IntervalPolicy = "24h"
	Interval48h IntervalPolicy = "48h"
)

func (p IntervalPolicy) String() string {
	return string(p)
}

func (p IntervalPolicy) Valid() bool {
	switch p {
	case Interval8h, Interval12h, Interval24h, Interval48h:
		return true
	}
	return false
}

// SlotsPerDay returns how many candidate slots an eligible day offers.
func (p IntervalPolicy) SlotsPerDay() int {
	switch p {
	case Interval8h:
		return 3
	case Interval12h:
		return 2
	default:
		return 1
	}
}

// ConflictMode selects how the allocator treats an occupied candidate slot.
type ConflictMode string

const (
	// ConflictForce accepts every candidate unconditionally.
	ConflictForce ConflictMode = "force"
	// ConflictSmartAnalysis searches forward for a free same-type slot.
	ConflictSmartAnalysis ConflictMode = "smart-analysis"
)

func (m ConflictMode) String() string {
	return string(m)
}

func (m ConflictMode) Valid() bool {
	return m == ConflictForce || m == ConflictSmartAnalysis
}

// StartMode selects where an allocation run begins its search.
type StartMode string

const (
	StartSpecificDate  StartMode = "specific-date"
	StartNextAvailable StartMode = "next-available"
)

func (m StartMode) String() string {
	return string(m)
}

func (m StartMode) Valid() bool {
	return m == StartSpecificDate || m == StartNextAvailable
}

// BatchConfig is the fully resolved configuration of one allocation run.
// StartDay must already be DayOf-normalized; ResolveStartDay takes care
// of the next-available mode before the allocator sees it.
type BatchConfig struct {
	StartDay       time.Time
	StartMode      StartMode
	Interval       IntervalPolicy
	PreferredStart TimeOfDay
	ConflictMode   ConflictMode
	HorizonDays    int
}

// ResolveStartDay pins the search origin: the configured day for
// specific-date mode, tomorrow relative to now for next-available.
func (c *BatchConfig) ResolveStartDay(now time.Time) time.Time {
	if c.StartMode == StartNextAvailable {
		return NextDay(DayOf(now))
	}
	return c.StartDay
}

func (c *BatchConfig) Validate() error {
	if c.StartMode == StartSpecificDate && c.StartDay.IsZero() {
		return ErrMissingStartDay
	}
	if !c.StartMode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStartMode, c.StartMode)
	}
	if !c.Interval.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownIntervalPolicy, c.Interval)
	}
	if !c.ConflictMode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownConflictMode, c.ConflictMode)
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHorizon, c.HorizonDays)
	}
	return nil
}
