package repository

import "errors"

var (
	ErrRedisConnection = errors.New("redis connection error")
	ErrInvalidItemData = errors.New("invalid scheduled item data")
	ErrInvalidPlanData = errors.New("invalid day plan data")
)
