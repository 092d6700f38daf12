package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/noah-isme/daily-feed-api/internal/models"
)

// FeedEntryRepository owns durable storage for feed entries. Entries are
// append-only; there are no update or delete operations.
type FeedEntryRepository interface {
	Create(ctx context.Context, entry *models.FeedEntry) error
	ListByStudent(ctx context.Context, studentID uint) ([]models.FeedEntry, error)
}

type feedEntryRepository struct {
	db *gorm.DB
}

// NewFeedEntryRepository constructs a feed entry repository.
func NewFeedEntryRepository(db *gorm.DB) FeedEntryRepository {
	return &feedEntryRepository{db: db}
}

func (r *feedEntryRepository) Create(ctx context.Context, entry *models.FeedEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to insert feed entry: %w", err)
	}

	// The database assigns ids; a zero id after a successful insert means the
	// write cannot be trusted.
	if entry.ID == 0 {
		return fmt.Errorf("insert succeeded but no id was assigned")
	}

	return nil
}

func (r *feedEntryRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.FeedEntry, error) {
	entries := make([]models.FeedEntry, 0)
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list feed entries: %w", err)
	}

	return entries, nil
}
