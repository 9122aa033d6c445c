package repository

import "brewhub-backend/internal/review/domain"

// ReviewRepository defines persistence for review entries.
type ReviewRepository interface {
	// Append stores one new entry. Entries are never updated or removed.
	Append(entry *domain.ReviewEntry) error

	// ListByBrewery returns a brewery's entries in append order. A
	// brewery nobody reviewed yet yields an empty slice, not an error.
	ListByBrewery(breweryID string) ([]domain.ReviewEntry, error)
}
