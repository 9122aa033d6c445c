package usecase

import (
	"context"
	"encoding/json"
)

// ReviewUsecase defines the interface for brewery search, detail and
// review business logic
type ReviewUsecase interface {
	// SearchBreweries relays a directory search; the upstream JSON
	// array is returned verbatim
	SearchBreweries(ctx context.Context, searchType, query string) (json.RawMessage, error)

	// GetBreweryWithReviews fetches one brewery from the directory and
	// merges the locally stored reviews in as a "reviews" field
	GetBreweryWithReviews(ctx context.Context, breweryID string) (map[string]interface{}, error)

	// AddReview appends one review entry for a brewery
	AddReview(ctx context.Context, breweryID, userID string, stars int, description string) error
}
