package delivery

import (
	"net/http"

	"brewhub-backend/internal/review/dto"
	"brewhub-backend/internal/review/usecase"
	"brewhub-backend/pkg/apperror"
	"brewhub-backend/pkg/openbrewery"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles brewery search, detail and review requests
type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
	}
}

// Search handles GET /search?type=by_city&query=denver
func (h *ReviewHandler) Search(c *gin.Context) {
	searchType := c.Query("type")
	query := c.Query("query")

	// Parameters are validated before any network call goes out
	if !openbrewery.ValidSearchType(searchType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be one of by_city, by_name, by_type"})
		return
	}
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	result, err := h.reviewUsecase.SearchBreweries(c.Request.Context(), searchType, query)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindUpstream {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperror.Message(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperror.Message(err)})
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}

// GetBrewery handles GET /brewery/:id
func (h *ReviewHandler) GetBrewery(c *gin.Context) {
	brewery, err := h.reviewUsecase.GetBreweryWithReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		// Directory lookups and review lookups collapse into one
		// generic failure on this route
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch brewery details"})
		return
	}

	c.JSON(http.StatusOK, brewery)
}

// AddReview handles POST /brewery/:id/review (protected)
func (h *ReviewHandler) AddReview(c *gin.Context) {
	// The reviewer identity always comes from the verified token, never
	// from the request body
	userID := c.GetString("userID")

	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperror.FromBinding(err).Message})
		return
	}

	if err := h.reviewUsecase.AddReview(c.Request.Context(), c.Param("id"), userID, req.Stars, req.Description); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperror.Message(err)})
		return
	}

	c.String(http.StatusOK, "Review added successfully")
}
