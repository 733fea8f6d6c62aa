package domain

import "errors"

var (
	ErrMissingStartDay       = errors.New("start day required for specific-date mode")
	ErrUnknownStartMode      = errors.New("unknown start mode")
	ErrUnknownIntervalPolicy = errors.New("unknown interval policy")
	ErrUnknownConflictMode   = errors.New("unknown conflict mode")
	ErrInvalidHorizon        = errors.New("search horizon must be positive")
	ErrInvalidTimeOfDay      = errors.New("invalid time of day")
	ErrInvalidDayKey         = errors.New("invalid day key")
	ErrInvalidContentType    = errors.New("invalid content type")
	ErrDayPlanNotFound       = errors.New("day plan not found")
	ErrScheduledItemNotFound = errors.New("scheduled item not found")
)
