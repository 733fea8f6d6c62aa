package config

import "errors"

var (
	ErrRedisAddrMissing            = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB              = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidScheduleInterval     = errors.New("SCHEDULE_INTERVAL must be one of 8h, 12h, 24h, 48h")
	ErrInvalidScheduleStartTime    = errors.New("SCHEDULE_START_TIME must be HH:MM")
	ErrInvalidScheduleConflictMode = errors.New("SCHEDULE_CONFLICT_MODE must be force or smart-analysis")
	ErrInvalidSearchHorizon        = errors.New("SEARCH_HORIZON_DAYS must be a positive integer")
)
