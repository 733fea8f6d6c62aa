package domain

import "time"

// OccupancyRecord holds the per-type flags of one (day, time-of-day) slot.
// Short and regular content never block each other.
type OccupancyRecord struct {
	HasShort   bool
	HasRegular bool
}

func (r *OccupancyRecord) has(contentType ContentType) bool {
	if contentType.IsShort() {
		return r.HasShort
	}
	return r.HasRegular
}

func (r *OccupancyRecord) set(contentType ContentType) {
	if contentType.IsShort() {
		r.HasShort = true
	} else {
		r.HasRegular = true
	}
}

// OccupancyIndex is the in-memory publication calendar an allocation run
// reads and writes. Days and slots it has never seen read as free. The
// index only grows; nothing ever clears a flag during a run.
type OccupancyIndex struct {
	days map[string]map[TimeOfDay]*OccupancyRecord
}

func NewOccupancyIndex() *OccupancyIndex {
	return &OccupancyIndex{
		days: make(map[string]map[TimeOfDay]*OccupancyRecord),
	}
}

func (x *OccupancyIndex) IsOccupied(day time.Time, slot TimeOfDay, contentType ContentType) bool {
	slots, ok := x.days[DayKey(day)]
	if !ok {
		return false
	}
	record, ok := slots[slot]
	if !ok {
		return false
	}
	return record.has(contentType)
}

func (x *OccupancyIndex) MarkOccupied(day time.Time, slot TimeOfDay, contentType ContentType) {
	dayKey := DayKey(day)
	slots, ok := x.days[dayKey]
	if !ok {
		slots = make(map[TimeOfDay]*OccupancyRecord)
		x.days[dayKey] = slots
	}
	record, ok := slots[slot]
	if !ok {
		record = &OccupancyRecord{}
		slots[slot] = record
	}
	record.set(contentType)
}

// Ingest marks the slot a past publication occupies. Each publication
// sets exactly one flag, chosen by the caller-resolved content type.
func (x *OccupancyIndex) Ingest(publishedAt time.Time, contentType ContentType) {
	x.MarkOccupied(DayOf(publishedAt), TimeOfDayFrom(publishedAt), contentType)
}

// SlotCount returns the number of distinct slots carrying at least one flag.
func (x *OccupancyIndex) SlotCount() int {
	total := 0
	for _, slots := range x.days {
		total += len(slots)
	}
	return total
}

func (x *OccupancyIndex) DayCount() int {
	return len(x.days)
}
