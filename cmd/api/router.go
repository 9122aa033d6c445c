package api

import (
	"net/http"

	"brewhub-backend/internal/auth/delivery"
	authUsecase "brewhub-backend/internal/auth/usecase"
	reviewDelivery "brewhub-backend/internal/review/delivery"
	reviewUsecase "brewhub-backend/internal/review/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, reviewUc reviewUsecase.ReviewUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	reviewHandler := reviewDelivery.NewReviewHandler(reviewUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Brewery routes
	r.GET("/search", reviewHandler.Search)
	r.GET("/brewery/:id", reviewHandler.GetBrewery)
	r.POST("/brewery/:id/review", delivery.AuthMiddleware(authUc), reviewHandler.AddReview)
}
