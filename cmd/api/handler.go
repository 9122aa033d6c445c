package api

import (
	authUsecase "brewhub-backend/internal/auth/usecase"
	reviewUsecase "brewhub-backend/internal/review/usecase"
	"brewhub-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase   authUsecase.AuthUsecase
	reviewUsecase reviewUsecase.ReviewUsecase
	config        *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, reviewUc reviewUsecase.ReviewUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:   authUc,
		reviewUsecase: reviewUc,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := h.Engine()
	return r.Run(addr)
}

// Engine builds the configured gin engine; split out so tests can drive
// routes without binding a port.
func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.reviewUsecase)
	return r
}
