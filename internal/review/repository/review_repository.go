package repository

import (
	"time"

	"brewhub-backend/internal/review/domain"

	"gorm.io/gorm"
)

// reviewRepository implements ReviewRepository on GORM/Postgres
type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

func (r *reviewRepository) Append(entry *domain.ReviewEntry) error {
	entry.CreatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *reviewRepository) ListByBrewery(breweryID string) ([]domain.ReviewEntry, error) {
	entries := make([]domain.ReviewEntry, 0)
	err := r.db.
		Where("brewery_id = ?", breweryID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
