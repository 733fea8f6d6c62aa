package domain

import (
	"fmt"
	"time"
)

const (
	dayKeyLayout  = "2006-01-02"
	minutesPerDay = 24 * 60
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// Slots are naive local times; no timezone or DST arithmetic is applied.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay((hour*60 + minute) % minutesPerDay)
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return NewTimeOfDay(hour, minute), nil
}

// TimeOfDayFrom truncates a timestamp to its wall-clock hour and minute.
func TimeOfDayFrom(ts time.Time) TimeOfDay {
	return NewTimeOfDay(ts.Hour(), ts.Minute())
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// AddHours shifts the time of day, wrapping past midnight modulo 24h.
func (t TimeOfDay) AddHours(hours int) TimeOfDay {
	shifted := (int(t) + hours*60) % minutesPerDay
	if shifted < 0 {
		shifted += minutesPerDay
	}
	return TimeOfDay(shifted)
}

// DayOf normalizes a timestamp to its calendar day. The result is
// anchored at UTC midnight so that day offsets are exact multiples of
// 24h regardless of the input location.
func DayOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NextDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1)
}

// DayOffset returns the whole-day distance from start to day. Both
// arguments are expected to be DayOf-normalized.
func DayOffset(start, day time.Time) int {
	return int(day.Sub(start) / (24 * time.Hour))
}

func DayKey(day time.Time) string {
	return day.Format(dayKeyLayout)
}

func ParseDayKey(key string) (time.Time, error) {
	day, err := time.ParseInLocation(dayKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDayKey, key)
	}
	return day, nil
}

// SlotKey identifies one (day, time-of-day) slot, e.g. "2026-03-14-07-00".
func SlotKey(day time.Time, slot TimeOfDay) string {
	return fmt.Sprintf("%s-%02d-%02d", DayKey(day), slot.Hour(), slot.Minute())
}
