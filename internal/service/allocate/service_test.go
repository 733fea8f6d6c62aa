package allocate

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/creatorly/upload-scheduling/internal/domain"
	"github.com/creatorly/upload-scheduling/internal/service/slotseq"
)

var testStartDay = domain.DayOf(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

func newTestService() *Service {
	return NewService(slotseq.NewGenerator(), nil)
}

func testConfig(interval domain.IntervalPolicy) domain.BatchConfig {
	return domain.BatchConfig{
		StartDay:       testStartDay,
		StartMode:      domain.StartSpecificDate,
		Interval:       interval,
		PreferredStart: domain.NewTimeOfDay(7, 0),
		ConflictMode:   domain.ConflictSmartAnalysis,
		HorizonDays:    365,
	}
}

func dayKey(offset int) string {
	return domain.DayKey(testStartDay.AddDate(0, 0, offset))
}

func TestAllocate_EmptyScheduleSingleShort(t *testing.T) {
	svc := newTestService()
	items := []*domain.ContentItem{
		domain.NewContentItem("v1", "clip one", domain.TypeShort, 45),
	}

	resp, err := svc.Allocate(context.Background(), items, domain.NewOccupancyIndex(), testConfig(domain.Interval24h), "run-1", "preview")
	if err != nil {
		t.Fatalf("Allocate() unexpected error: %v", err)
	}

	got := resp.Results[0]
	if got.ScheduledDate != dayKey(0) || got.ScheduledTime != "07:00" {
		t.Errorf("assigned %s %s, want %s 07:00", got.ScheduledDate, got.ScheduledTime, dayKey(0))
	}
	if got.Conflict {
		t.Error("empty schedule produced a conflict")
	}
}

func TestAllocate_OccupiedStartDayShiftsToNextDay(t *testing.T) {
	svc := newTestService()
	index := domain.NewOccupancyIndex()
	index.MarkOccupied(testStartDay, domain.NewTimeOfDay(7, 0), domain.TypeShort)

	items := []*domain.ContentItem{
		domain.NewContentItem("v1", "clip one", domain.TypeShort, 45),
	}

	resp, err := svc.Allocate(context.Background(), items, index, testConfig(domain.Interval24h), "run-1", "preview")
	if err != nil {
		t.Fatalf("Allocate() unexpected error: %v", err)
	}

	got := resp.Results[0]
	if got.ScheduledDate != dayKey(1) || got.ScheduledTime != "07:00" {
		t.Errorf("assigned %s %s, want %s 07:00", got.ScheduledDate, got.ScheduledTime, dayKey(1))
	}
	if got.Conflict {
		t.Error("single occupied day should not exhaust the horizon")
	}
}

func TestAllocate_TwelveHourFillsBothDailySlots(t *testing.T) {
	svc := newTestService()
	items := []*domain.ContentItem{
		domain.NewContentItem("v1", "one", domain.TypeRegular, 300),
		domain.NewContentItem("v2", "two", domain.TypeRegular, 300),
		domain.NewContentItem("v3", "three", domain.TypeRegular, 300),
	}

	resp, err := svc.Allocate(context.Background(), items, domain.NewOccupancyIndex(), testConfig(domain.Interval12h), "run-1", "preview")
	if err != nil {
		t.Fatalf("Allocate() unexpected error: %v", err)
	}

	want := []struct{ day, slot string }{
		{dayKey(0), "07:00"},
		{dayKey(0), "19:00"},
		{dayKey(1), "07:00"},
	}
	for i, w := range want {
		got := resp.Results[i]
		if got.ScheduledDate != w.day || got.ScheduledTime != w.slot {
			t.Errorf("item %d assigned %s %s, want %s %s", i, got.ScheduledDate, got.ScheduledTime, w.day, w.slot)
		}
		if got.Conflict {
			t.Errorf("item %d unexpectedly conflicted", i)
		}
	}

	if resp.Summary.FirstUpload != dayKey(0)+" 07:00" {
		t.Errorf("FirstUpload = %q", resp.Summary.FirstUpload)
	}
	if resp.Summary.LastUpload != dayKey(1)+" 07:00" {
		t.Errorf("LastUpload = %q", resp.Summary.LastUpload)
	}
	if resp.Summary.TotalDaysUsed != 2 {
		t.Errorf("TotalDaysUsed = %d, want 2", resp.Summary.TotalDaysUsed)
	}
	if resp.Summary.RegularSlots != 3 || resp.Summary.ShortSlots != 0 {
		t.Errorf("slot counts = %d regular / %d short, want 3 / 0", resp.Summary.RegularSlots, resp.Summary.ShortSlots)
	}
}

func TestAllocate_FortyEightHourSkipsOddDays(t *testing.T) {
	svc := newTestService()
	items := []*domain.ContentItem{
		domain.NewContentItem("v1", "one", domain.TypeRegular, 300),
		domain.NewContentItem("v2", "two", domain.TypeRegular, 300),
	}

	resp, err := svc.Allocate(context.Background(), items, domain.NewOccupancyIndex(), testConfig(domain.Interval48h), "run-1", "preview")
	if err != nil {
		t.Fatalf("Allocate() unexpected error: %v", err)
	}

	if got := resp.Results[0].ScheduledDate; got != dayKey(0) {
		t.Errorf("first item assigned %s, want %s", got, dayKey(0))
	}
	if got := resp.Results[1].ScheduledDate; got != dayKey(2) {
		t.Errorf("second item assigned %s, want %s (odd days are skipped)", got, dayKey(2))
	}
}

func TestAllocate_FortyEightHourNeverLandsOnOddDay(t *testing.T) {
	svc := newTestService()

	items := make([]*domain.ContentItem, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, domain.NewContentItem("v", "clip", domain.TypeRegular, 300))
	}

	resp, err := svc.Allocate(context.Background(), items, domain.NewOccupancyIndex(), testConfig(domain.Interval48h), "run-1", "preview")
	if err != nil {
		t.Fatalf("Allocate() unexpected error: %v", err)
	}

	for i, result := range resp.Results {
		day, err := domain.ParseDayKey(result.ScheduledDate)
		if err != nil {
			t.Fatalf("item %d has malformed day key %q", i, result.ScheduledDate)
		}
		if domain.DayOffset(testStartDay, day)%2 != 0 {
			t.Errorf("item %d landed on odd day offset %d", i, domain.DayOffset(testStartDay, day))
		}
	}
}

func TestAllocate_HorizonExhaustionForcesAssignment(t *testing.T) {
	svc := newTestService()
	index := domain.NewOccupancyIndex()
	slot := domain.NewTimeOfDay(7, 0)
	for offset := 0; offset < 365; offset++ {
		index.MarkOccupied(testStartDay.AddDate(0, 0, offset), slot, domain.TypeShort)
	}

	items := []*domain.ContentItem{
		domain.NewContentItem("v1", "clip one", domain.TypeShort, 45),
	}

	resp, err := svc.Allocate(context.Background(), items, index, testConfig(domain.Interval24h), "run-1", "preview")
	if err != nil {
		t.Fatalf("Allocate() unexpected error: %v", err)
	}

	got := resp.Results[0]
	if !got.Conflict {
		t.Fatal("fully booked horizon did not set conflict")
	}
	if got.ScheduledDate != dayKey(365) {
		t.Errorf("forced onto %s, want %s", got.ScheduledDate, dayKey(365))
	}
	if !strings.Contains(got.ConflictReason, "365 days searched") {
		t.Errorf("ConflictReason %q should name the days searched", got.ConflictReason)
	}
	if !strings.Contains(got.ConflictReason, "SHORT") {
		t.Errorf("ConflictReason %q should name the item type", got.ConflictReason)
	}

	// The forced slot stays unmarked so the collision remains visible.
	if index.IsOccupied(testStartDay.AddDate(0, 0, 365), slot, domain.TypeShort) {
		t.Error("forced assignment marked occupancy")
	}

	if resp.Summary.ConflictCount != 1 {
		t.Errorf("ConflictCount = %d, want 1", resp.Summary.ConflictCount)
	}
}

func TestAllocate_TypesNeverBlockEachOther(t *testing.T) {
	svc := newTestService()
	index := domain.NewOccupancyIndex()
	index.MarkOccupied(testStartDay, domain.NewTimeOfDay(7, 0), domain.TypeRegular)

	items := []*domain.ContentItem{
		domain.NewContentItem("v1", "clip one", domain.TypeShort, 45),
	}

	resp, err := svc.Allocate(context.Background(), items, index, testConfig(domain.Interval24h), "run-1", "preview")
	if err != nil {
		t.Fatalf("Allocate() unexpected error: %v", err)
	}

	got := resp.Results[0]
	if got.ScheduledDate != dayKey(0) || got.ScheduledTime != "07:00" {
		t.Errorf("short assigned %s %s, want to share %s 07:00 with the regular", got.ScheduledDate, got.ScheduledTime, dayKey(0))
	}
}

func TestAllocate_NoSameTypeDoubleBooking(t *testing.T) {
	svc := newTestService()

	items := make([]*domain.ContentItem, 0, 30)
	for i := 0; i < 15; i++ {
		items = append(items, domain.NewContentItem("s", "short", domain.TypeShort, 45))
		items = append(items, domain.NewContentItem("r", "regular", domain.TypeRegular, 300))
	}

	resp, err := svc.Allocate(context.Background(), items, domain.NewOccupancyIndex(), testConfig(domain.Interval8h), "run-1", "preview")
	if err != nil {
		t.Fatalf("Allocate() unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for i, result := range resp.Results {
		if result.Conflict {
			continue
		}
		key := result.ScheduledDate + " " + result.ScheduledTime + " " + result.Type.String()
		if seen[key] {
			t.Errorf("item %d double-booked %s", i, key)
		}
		seen[key] = true
	}
}

func TestAllocate_ForceModeAcceptsFirstCandidate(t *testing.T) {
	svc := newTestService()
	index := domain.NewOccupancyIndex()
	index.MarkOccupied(testStartDay, domain.NewTimeOfDay(7, 0), domain.TypeShort)

	cfg := testConfig(domain.Interval24h)
	cfg.ConflictMode = domain.ConflictForce

	items := []*domain.ContentItem{
		domain.NewContentItem("v1", "one", domain.TypeShort, 45),
		domain.NewContentItem("v2", "two", domain.TypeShort, 45),
	}

	resp, err := svc.Allocate(context.Background(), items, index, cfg, "run-1", "preview")
	if err != nil {
		t.Fatalf("Allocate() unexpected error: %v", err)
	}

	for i, result := range resp.Results {
		if result.ScheduledDate != dayKey(0) || result.ScheduledTime != "07:00" {
			t.Errorf("item %d assigned %s %s, want first candidate %s 07:00", i, result.ScheduledDate, result.ScheduledTime, dayKey(0))
		}
		if result.Conflict {
			t.Errorf("item %d flagged conflict under force mode", i)
		}
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	svc := newTestService()
	cfg := testConfig(domain.Interval12h)

	run := func() *Response {
		index := domain.NewOccupancyIndex()
		index.MarkOccupied(testStartDay, domain.NewTimeOfDay(19, 0), domain.TypeRegular)
		items := []*domain.ContentItem{
			domain.NewContentItem("v1", "one", domain.TypeRegular, 300),
			domain.NewContentItem("v2", "two", domain.TypeShort, 45),
			domain.NewContentItem("v3", "three", domain.TypeRegular, 300),
		}
		resp, err := svc.Allocate(context.Background(), items, index, cfg, "run-1", "preview")
		if err != nil {
			t.Fatalf("Allocate() unexpected error: %v", err)
		}
		return resp
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different outputs:\n%+v\n%+v", first, second)
	}
}

func TestAllocate_InvalidConfigFailsBeforeProcessing(t *testing.T) {
	svc := newTestService()
	cfg := testConfig(domain.Interval24h)
	cfg.Interval = "6h"

	item := domain.NewContentItem("v1", "one", domain.TypeShort, 45)
	_, err := svc.Allocate(context.Background(), []*domain.ContentItem{item}, domain.NewOccupancyIndex(), cfg, "run-1", "preview")
	if !errors.Is(err, domain.ErrUnknownIntervalPolicy) {
		t.Fatalf("Allocate() error = %v, want ErrUnknownIntervalPolicy", err)
	}
	if item.Assigned() {
		t.Error("item was mutated despite the config error")
	}
}

func TestAllocate_LaterItemsSeeEarlierAssignments(t *testing.T) {
	svc := newTestService()
	items := []*domain.ContentItem{
		domain.NewContentItem("v1", "one", domain.TypeShort, 45),
		domain.NewContentItem("v2", "two", domain.TypeShort, 45),
	}

	resp, err := svc.Allocate(context.Background(), items, domain.NewOccupancyIndex(), testConfig(domain.Interval24h), "run-1", "preview")
	if err != nil {
		t.Fatalf("Allocate() unexpected error: %v", err)
	}

	if resp.Results[0].ScheduledDate == resp.Results[1].ScheduledDate {
		t.Errorf("second item reused the first item's slot on %s", resp.Results[0].ScheduledDate)
	}
}
