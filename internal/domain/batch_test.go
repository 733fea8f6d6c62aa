package domain

import (
	"errors"
	"testing"
	"time"
)

func validBatchConfig() BatchConfig {
	return BatchConfig{
		StartDay:       DayOf(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)),
		StartMode:      StartSpecificDate,
		Interval:       Interval24h,
		PreferredStart: NewTimeOfDay(7, 0),
		ConflictMode:   ConflictSmartAnalysis,
		HorizonDays:    365,
	}
}

func TestBatchConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BatchConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *BatchConfig) {}},
		{
			name:    "missing start day",
			mutate:  func(c *BatchConfig) { c.StartDay = time.Time{} },
			wantErr: ErrMissingStartDay,
		},
		{
			name:    "unknown start mode",
			mutate:  func(c *BatchConfig) { c.StartMode = "whenever" },
			wantErr: ErrUnknownStartMode,
		},
		{
			name:    "unknown interval",
			mutate:  func(c *BatchConfig) { c.Interval = "6h" },
			wantErr: ErrUnknownIntervalPolicy,
		},
		{
			name:    "unknown conflict mode",
			mutate:  func(c *BatchConfig) { c.ConflictMode = "ask" },
			wantErr: ErrUnknownConflictMode,
		},
		{
			name:    "zero horizon",
			mutate:  func(c *BatchConfig) { c.HorizonDays = 0 },
			wantErr: ErrInvalidHorizon,
		},
		{
			name:    "negative horizon",
			mutate:  func(c *BatchConfig) { c.HorizonDays = -5 },
			wantErr: ErrInvalidHorizon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBatchConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBatchConfigNextAvailableNeedsNoStartDay(t *testing.T) {
	cfg := validBatchConfig()
	cfg.StartMode = StartNextAvailable
	cfg.StartDay = time.Time{}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestBatchConfigResolveStartDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 16, 45, 0, 0, time.UTC)

	cfg := validBatchConfig()
	if got := cfg.ResolveStartDay(now); !got.Equal(cfg.StartDay) {
		t.Errorf("specific-date resolved to %v, want %v", got, cfg.StartDay)
	}

	cfg.StartMode = StartNextAvailable
	want := DayOf(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	if got := cfg.ResolveStartDay(now); !got.Equal(want) {
		t.Errorf("next-available resolved to %v, want %v", got, want)
	}
}

func TestIntervalPolicySlotsPerDay(t *testing.T) {
	tests := []struct {
		policy IntervalPolicy
		want   int
	}{
		{Interval8h, 3},
		{Interval12h, 2},
		{Interval24h, 1},
		{Interval48h, 1},
	}

	for _, tt := range tests {
		if got := tt.policy.SlotsPerDay(); got != tt.want {
			t.Errorf("%s SlotsPerDay = %d, want %d", tt.policy, got, tt.want)
		}
	}
}
