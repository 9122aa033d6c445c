package delivery

import (
	"net/http"

	"brewhub-backend/internal/auth/dto"
	"brewhub-backend/internal/auth/usecase"
	"brewhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperror.FromBinding(err).Message})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindConflict:
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperror.Message(err)})
		case apperror.KindValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": apperror.Message(err)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": apperror.Message(err)})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperror.FromBinding(err).Message})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindAuth {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperror.Message(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperror.Message(err)})
		return
	}

	c.JSON(http.StatusOK, resp)
}
