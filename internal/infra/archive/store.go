package archive

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/creatorly/upload-scheduling/internal/domain"
)

// PublishedVideo is one row of the platform's published-video archive.
// The table is owned by the library service; this store only reads it.
type PublishedVideo struct {
	ID              string    `gorm:"primaryKey"`
	Title           string    `gorm:"column:title"`
	PublishedAt     time.Time `gorm:"column:published_at;index"`
	DurationSeconds float64   `gorm:"column:duration_seconds"`
	Width           int       `gorm:"column:width"`
	Height          int       `gorm:"column:height"`
}

func (PublishedVideo) TableName() string {
	return "published_videos"
}

// Store serves the publication snapshot from the archive database. Used
// when the content library API is not configured.
type Store struct {
	db *gorm.DB
}

func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}

	return NewStore(db), nil
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) PublishedSince(ctx context.Context, since time.Time) ([]domain.Publication, error) {
	var rows []PublishedVideo
	err := s.db.WithContext(ctx).
		Where("published_at >= ?", since).
		Order("published_at").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query published videos: %w", err)
	}

	publications := make([]domain.Publication, 0, len(rows))
	for _, row := range rows {
		publications = append(publications, domain.Publication{
			ID:              row.ID,
			Title:           row.Title,
			PublishedAt:     row.PublishedAt,
			DurationSeconds: row.DurationSeconds,
			Width:           row.Width,
			Height:          row.Height,
		})
	}

	return publications, nil
}
