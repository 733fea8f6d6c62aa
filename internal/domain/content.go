package domain

import "fmt"

// ContentType represents the classification of a content item for
// scheduling purposes. Short and regular items occupy independent
// tracks of the publication calendar.
type ContentType string

const (
	TypeShort   ContentType = "short"
	TypeRegular ContentType = "regular"
)

func (t ContentType) String() string {
	return string(t)
}

func (t ContentType) IsShort() bool {
	return t == TypeShort
}

func (t ContentType) IsRegular() bool {
	return t == TypeRegular
}

func (t ContentType) Valid() bool {
	return t == TypeShort || t == TypeRegular
}

func ParseContentType(s string) (ContentType, error) {
	t := ContentType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidContentType, s)
	}
	return t, nil
}

// ContentItem is one pending upload in an allocation batch. The
// allocator fills in the Scheduled* and Conflict fields.
type ContentItem struct {
	ID              string
	Name            string
	Type            ContentType
	DurationSeconds float64

	ScheduledDay  string
	ScheduledSlot TimeOfDay
	Conflict      bool
	ConflictReason string
}

func NewContentItem(id, name string, contentType ContentType, durationSeconds float64) *ContentItem {
	return &ContentItem{
		ID:              id,
		Name:            name,
		Type:            contentType,
		DurationSeconds: durationSeconds,
	}
}

// Assigned reports whether the item has received a slot.
func (i *ContentItem) Assigned() bool {
	return i.ScheduledDay != ""
}
