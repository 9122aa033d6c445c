package delivery

import (
	"net/http"

	"brewhub-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards protected routes. A missing Authorization header
// is 403, a token that fails verification is 500; both statuses are part
// of the public API contract.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "no token provided"})
			c.Abort()
			return
		}

		userID, err := authUsecase.VerifyToken(authHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
