package repository

import (
	"sync"
	"time"

	"brewhub-backend/internal/review/domain"
)

// memoryReviewRepository keeps review entries in-process, for tests and
// local runs without Postgres.
type memoryReviewRepository struct {
	mu      sync.RWMutex
	nextID  uint64
	entries map[string][]domain.ReviewEntry // key: brewery ID
}

func NewMemoryReviewRepository() ReviewRepository {
	return &memoryReviewRepository{
		nextID:  1,
		entries: make(map[string][]domain.ReviewEntry),
	}
}

func (r *memoryReviewRepository) Append(entry *domain.ReviewEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = r.nextID
	r.nextID++
	entry.CreatedAt = time.Now()
	r.entries[entry.BreweryID] = append(r.entries[entry.BreweryID], *entry)
	return nil
}

func (r *memoryReviewRepository) ListByBrewery(breweryID string) ([]domain.ReviewEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ReviewEntry, len(r.entries[breweryID]))
	copy(out, r.entries[breweryID])
	return out, nil
}
