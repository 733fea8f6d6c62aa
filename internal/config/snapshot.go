package config

import (
	"os"
	"strconv"
)

const (
	snapshotLookbackDaysEnv  = "SNAPSHOT_LOOKBACK_DAYS"
	snapshotLookaheadDaysEnv = "SNAPSHOT_LOOKAHEAD_DAYS"

	defaultSnapshotLookbackDays  = 90
	defaultSnapshotLookaheadDays = 400
)

// SnapshotConfig bounds how far the occupancy snapshot reaches: back
// into published history and forward into committed plans.
type SnapshotConfig struct {
	LookbackDays  int
	LookaheadDays int
}

func LoadSnapshotConfig() *SnapshotConfig {
	lookback := defaultSnapshotLookbackDays
	if v := os.Getenv(snapshotLookbackDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			lookback = parsed
		}
	}

	lookahead := defaultSnapshotLookaheadDays
	if v := os.Getenv(snapshotLookaheadDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			lookahead = parsed
		}
	}

	return &SnapshotConfig{
		LookbackDays:  lookback,
		LookaheadDays: lookahead,
	}
}
