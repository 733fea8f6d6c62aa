package config

import (
	"os"
	"strconv"

	"github.com/creatorly/upload-scheduling/internal/domain"
)

const (
	scheduleIntervalEnv     = "SCHEDULE_INTERVAL"
	scheduleStartTimeEnv    = "SCHEDULE_START_TIME"
	scheduleConflictModeEnv = "SCHEDULE_CONFLICT_MODE"
	searchHorizonDaysEnv    = "SEARCH_HORIZON_DAYS"

	defaultSearchHorizonDays = 365
)

// ScheduleConfig carries the batch defaults; request payloads may
// override any of them per batch.
type ScheduleConfig struct {
	Interval       domain.IntervalPolicy
	PreferredStart domain.TimeOfDay
	ConflictMode   domain.ConflictMode
	HorizonDays    int
}

func LoadScheduleConfig() (*ScheduleConfig, error) {
	interval := domain.Interval24h
	if v := os.Getenv(scheduleIntervalEnv); v != "" {
		interval = domain.IntervalPolicy(v)
		if !interval.Valid() {
			return nil, ErrInvalidScheduleInterval
		}
	}

	preferredStart := domain.NewTimeOfDay(7, 0)
	if v := os.Getenv(scheduleStartTimeEnv); v != "" {
		parsed, err := domain.ParseTimeOfDay(v)
		if err != nil {
			return nil, ErrInvalidScheduleStartTime
		}
		preferredStart = parsed
	}

	conflictMode := domain.ConflictSmartAnalysis
	if v := os.Getenv(scheduleConflictModeEnv); v != "" {
		conflictMode = domain.ConflictMode(v)
		if !conflictMode.Valid() {
			return nil, ErrInvalidScheduleConflictMode
		}
	}

	horizonDays := defaultSearchHorizonDays
	if v := os.Getenv(searchHorizonDaysEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidSearchHorizon
		}
		horizonDays = parsed
	}

	return &ScheduleConfig{
		Interval:       interval,
		PreferredStart: preferredStart,
		ConflictMode:   conflictMode,
		HorizonDays:    horizonDays,
	}, nil
}
