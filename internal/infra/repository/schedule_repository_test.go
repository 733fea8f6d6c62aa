package repository

import (
	"context"
	"testing"
	"time"

	"github.com/creatorly/upload-scheduling/internal/domain"
	"github.com/creatorly/upload-scheduling/internal/testutil"
)

func testDayPlan(dayKey string, itemIDs ...string) *domain.DayPlan {
	plan := domain.NewDayPlan(dayKey)
	for _, id := range itemIDs {
		plan.AddItem(domain.ScheduledItem{
			ItemID: id,
			Name:   "clip " + id,
			Type:   domain.TypeRegular,
			Day:    dayKey,
			Slot:   "07:00",
		})
	}
	return plan
}

func TestSaveAndGetDayPlan(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	plan := testDayPlan("2026-04-01", "item-001", "item-002")
	if err := repo.SaveDayPlan(ctx, plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	retrieved, err := repo.GetDayPlan(ctx, "2026-04-01")
	if err != nil {
		t.Fatalf("failed to get day plan: %v", err)
	}

	if retrieved.DayKey != plan.DayKey {
		t.Errorf("expected DayKey %s, got %s", plan.DayKey, retrieved.DayKey)
	}
	if retrieved.TotalPlanned != 2 || len(retrieved.Items) != 2 {
		t.Errorf("expected 2 items, got %d (TotalPlanned=%d)", len(retrieved.Items), retrieved.TotalPlanned)
	}
	if retrieved.Items[0].ItemID != "item-001" {
		t.Errorf("expected ItemID item-001, got %s", retrieved.Items[0].ItemID)
	}
	if retrieved.Items[0].Type != domain.TypeRegular {
		t.Errorf("expected Type regular, got %s", retrieved.Items[0].Type)
	}

	// Verify TTL is set on the plan key
	ttl, err := client.TTL(ctx, "schedule:plan:2026-04-01").Result()
	if err != nil {
		t.Fatalf("failed to get TTL: %v", err)
	}
	if ttl <= 0 || ttl > 400*24*time.Hour {
		t.Errorf("expected TTL around 400 days, got %v", ttl)
	}
}

func TestSaveDayPlanNil(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	if err := repo.SaveDayPlan(ctx, nil); err != ErrInvalidPlanData {
		t.Errorf("expected ErrInvalidPlanData, got %v", err)
	}
}

func TestGetDayPlanNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	if _, err := repo.GetDayPlan(ctx, "2026-12-31"); err != domain.ErrDayPlanNotFound {
		t.Errorf("expected ErrDayPlanNotFound, got %v", err)
	}
}

func TestGetDayPlansInRange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	for _, dayKey := range []string{"2026-04-01", "2026-04-03", "2026-04-05", "2026-05-01"} {
		if err := repo.SaveDayPlan(ctx, testDayPlan(dayKey, "item-"+dayKey)); err != nil {
			t.Fatalf("failed to save plan for %s: %v", dayKey, err)
		}
	}

	tests := []struct {
		name          string
		startKey      string
		endKey        string
		expectedCount int
	}{
		{
			name:          "full range",
			startKey:      "2026-04-01",
			endKey:        "2026-05-01",
			expectedCount: 4,
		},
		{
			name:          "partial range",
			startKey:      "2026-04-02",
			endKey:        "2026-04-05",
			expectedCount: 2,
		},
		{
			name:          "single day",
			startKey:      "2026-04-03",
			endKey:        "2026-04-03",
			expectedCount: 1,
		},
		{
			name:          "empty range",
			startKey:      "2026-06-01",
			endKey:        "2026-06-30",
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans, err := repo.GetDayPlansInRange(ctx, tt.startKey, tt.endKey)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(plans) != tt.expectedCount {
				t.Errorf("expected %d plans, got %d", tt.expectedCount, len(plans))
			}
		})
	}
}

func TestDeleteDayPlanCascadesToItems(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	plan := testDayPlan("2026-04-10", "item-del-001", "item-del-002")
	if err := repo.SaveDayPlan(ctx, plan); err != nil {
		t.Fatalf("failed to save plan: %v", err)
	}
	for i := range plan.Items {
		if err := repo.SaveScheduledItem(ctx, &plan.Items[i]); err != nil {
			t.Fatalf("failed to save item: %v", err)
		}
	}

	if err := repo.DeleteDayPlan(ctx, "2026-04-10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetDayPlan(ctx, "2026-04-10"); err != domain.ErrDayPlanNotFound {
		t.Errorf("expected ErrDayPlanNotFound after delete, got %v", err)
	}
	for _, item := range plan.Items {
		if _, err := repo.GetScheduledItem(ctx, item.ItemID); err != domain.ErrScheduledItemNotFound {
			t.Errorf("expected ErrScheduledItemNotFound for %s after delete, got %v", item.ItemID, err)
		}
	}

	// Deleting an absent plan is a no-op
	if err := repo.DeleteDayPlan(ctx, "2026-04-11"); err != nil {
		t.Errorf("delete of missing plan returned %v", err)
	}
}

func TestScheduledItemRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	item := &domain.ScheduledItem{
		ItemID:         "item-rt-001",
		Name:           "launch teaser",
		Type:           domain.TypeShort,
		Day:            "2026-04-02",
		Slot:           "19:00",
		Conflict:       true,
		ConflictReason: "no free SHORT slot found: 14 days searched",
	}
	if err := repo.SaveScheduledItem(ctx, item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	retrieved, err := repo.GetScheduledItem(ctx, "item-rt-001")
	if err != nil {
		t.Fatalf("failed to get scheduled item: %v", err)
	}
	if retrieved.Type != domain.TypeShort || retrieved.Slot != "19:00" {
		t.Errorf("retrieved %+v, want type short at 19:00", retrieved)
	}
	if !retrieved.Conflict || retrieved.ConflictReason != item.ConflictReason {
		t.Errorf("conflict fields lost in round trip: %+v", retrieved)
	}
}

func TestIsItemScheduled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	item := &domain.ScheduledItem{ItemID: "item-exists", Type: domain.TypeRegular, Day: "2026-04-02", Slot: "07:00"}
	if err := repo.SaveScheduledItem(ctx, item); err != nil {
		t.Fatalf("failed to save item: %v", err)
	}

	scheduled, err := repo.IsItemScheduled(ctx, "item-exists")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !scheduled {
		t.Error("existing item reported as not scheduled")
	}

	scheduled, err = repo.IsItemScheduled(ctx, "item-missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scheduled {
		t.Error("missing item reported as scheduled")
	}
}

func TestSaveScheduledItemNil(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	if err := repo.SaveScheduledItem(ctx, nil); err != ErrInvalidItemData {
		t.Errorf("expected ErrInvalidItemData, got %v", err)
	}
}
