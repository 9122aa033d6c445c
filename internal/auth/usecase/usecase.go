package usecase

import "brewhub-backend/internal/auth/dto"

// AuthUsecase defines the interface for registration, login and tokens
type AuthUsecase interface {
	// Register creates a new user and returns its public projection
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)

	// Login authenticates a user and returns a fresh bearer token
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)

	// IssueToken signs a time-limited token carrying the user identifier
	IssueToken(userID string) (string, error)

	// VerifyToken validates a bearer token (with or without the
	// "Bearer " prefix) and returns the user identifier it carries
	VerifyToken(raw string) (string, error)
}
