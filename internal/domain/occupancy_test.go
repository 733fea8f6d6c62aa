package domain

import (
	"testing"
	"time"
)

func TestOccupancyIndexTypeIndependence(t *testing.T) {
	idx := NewOccupancyIndex()
	day := DayOf(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	slot := NewTimeOfDay(7, 0)

	if idx.IsOccupied(day, slot, TypeShort) {
		t.Error("fresh index reported an occupied slot")
	}

	idx.MarkOccupied(day, slot, TypeShort)

	if !idx.IsOccupied(day, slot, TypeShort) {
		t.Error("short flag not set after MarkOccupied")
	}
	if idx.IsOccupied(day, slot, TypeRegular) {
		t.Error("regular flag set by a short mark")
	}

	idx.MarkOccupied(day, slot, TypeRegular)

	if !idx.IsOccupied(day, slot, TypeShort) || !idx.IsOccupied(day, slot, TypeRegular) {
		t.Error("both types should coexist on one slot")
	}
	if idx.SlotCount() != 1 {
		t.Errorf("SlotCount = %d, want 1", idx.SlotCount())
	}
}

func TestOccupancyIndexMissingEntriesReadFree(t *testing.T) {
	idx := NewOccupancyIndex()
	day := DayOf(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))

	idx.MarkOccupied(day, NewTimeOfDay(7, 0), TypeRegular)

	if idx.IsOccupied(day, NewTimeOfDay(19, 0), TypeRegular) {
		t.Error("unseen slot on a known day should read free")
	}
	if idx.IsOccupied(NextDay(day), NewTimeOfDay(7, 0), TypeRegular) {
		t.Error("unseen day should read free")
	}
}

func TestOccupancyIndexMarkIsIdempotent(t *testing.T) {
	idx := NewOccupancyIndex()
	day := DayOf(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	slot := NewTimeOfDay(7, 0)

	idx.MarkOccupied(day, slot, TypeRegular)
	idx.MarkOccupied(day, slot, TypeRegular)

	if idx.SlotCount() != 1 {
		t.Errorf("SlotCount = %d after repeated marks, want 1", idx.SlotCount())
	}
	if idx.DayCount() != 1 {
		t.Errorf("DayCount = %d after repeated marks, want 1", idx.DayCount())
	}
}

func TestOccupancyIndexIngest(t *testing.T) {
	idx := NewOccupancyIndex()
	publishedAt := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

	idx.Ingest(publishedAt, TypeShort)

	day := DayOf(publishedAt)
	slot := NewTimeOfDay(19, 30)
	if !idx.IsOccupied(day, slot, TypeShort) {
		t.Error("ingested publication did not set its slot")
	}
	if idx.IsOccupied(day, slot, TypeRegular) {
		t.Error("ingest set more than one flag")
	}
}
