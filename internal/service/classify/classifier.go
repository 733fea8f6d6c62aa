package classify

import (
	"github.com/creatorly/upload-scheduling/internal/domain"
)

const (
	// ShortMaxDurationSeconds is the longest a portrait video may run and
	// still be classified as short-form.
	ShortMaxDurationSeconds = 60
)

type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify derives the content type from a publication's dimensions and
// duration: portrait orientation within the short duration cap is short,
// everything else is regular. Unknown dimensions default to regular.
func (c *Classifier) Classify(pub domain.Publication) domain.ContentType {
	if c.classify(pub.Width, pub.Height, pub.DurationSeconds) {
		return domain.TypeShort
	}
	return domain.TypeRegular
}

// ClassifyItem applies the same rule to a pending item submitted without
// an explicit type tag.
func (c *Classifier) ClassifyItem(width, height int, durationSeconds float64) domain.ContentType {
	if c.classify(width, height, durationSeconds) {
		return domain.TypeShort
	}
	return domain.TypeRegular
}

func (c *Classifier) classify(width, height int, durationSeconds float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	portrait := width < height
	return portrait && durationSeconds <= ShortMaxDurationSeconds
}
