package usecase

import (
	"context"
	"encoding/json"

	"brewhub-backend/internal/review/domain"
	"brewhub-backend/internal/review/repository"
	"brewhub-backend/pkg/apperror"
	"brewhub-backend/pkg/cache"
	"brewhub-backend/pkg/openbrewery"
)

// reviewUsecase implements ReviewUsecase interface
type reviewUsecase struct {
	reviewRepo repository.ReviewRepository
	directory  *openbrewery.Client
	cache      *cache.Cache
}

// NewReviewUsecase creates a new instance of reviewUsecase. cache may be
// nil when Redis is not configured.
func NewReviewUsecase(reviewRepo repository.ReviewRepository, directory *openbrewery.Client, c *cache.Cache) ReviewUsecase {
	return &reviewUsecase{
		reviewRepo: reviewRepo,
		directory:  directory,
		cache:      c,
	}
}

func (u *reviewUsecase) SearchBreweries(ctx context.Context, searchType, query string) (json.RawMessage, error) {
	cacheKey := "search:" + searchType + ":" + query
	if cached, ok := u.cache.Get(ctx, cacheKey); ok {
		return cached, nil
	}

	result, err := u.directory.Search(ctx, searchType, query)
	if err != nil {
		return nil, err
	}

	u.cache.Set(ctx, cacheKey, result)
	return result, nil
}

func (u *reviewUsecase) GetBreweryWithReviews(ctx context.Context, breweryID string) (map[string]interface{}, error) {
	raw, ok := u.cache.Get(ctx, "brewery:"+breweryID)
	if !ok {
		fetched, err := u.directory.GetByID(ctx, breweryID)
		if err != nil {
			return nil, err
		}
		u.cache.Set(ctx, "brewery:"+breweryID, fetched)
		raw = fetched
	}

	var brewery map[string]interface{}
	if err := json.Unmarshal(raw, &brewery); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to fetch brewery", err)
	}

	reviews, err := u.reviewRepo.ListByBrewery(breweryID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to fetch reviews", err)
	}

	// Brewery fields pass through unmodified; only the reviews field is
	// added on top. reviews is always a list, never null.
	brewery["reviews"] = reviews
	return brewery, nil
}

func (u *reviewUsecase) AddReview(ctx context.Context, breweryID, userID string, stars int, description string) error {
	entry := &domain.ReviewEntry{
		BreweryID:   breweryID,
		UserID:      userID,
		Stars:       stars,
		Description: description,
	}
	if err := u.reviewRepo.Append(entry); err != nil {
		return apperror.Wrap(apperror.KindInternal, "failed to save review", err)
	}
	return nil
}
