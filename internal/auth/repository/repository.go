package repository

import "brewhub-backend/internal/auth/domain"

// UserRepository defines persistence for user records. Lookups return
// (nil, nil) when no record matches.
type UserRepository interface {
	Create(user *domain.User) error
	FindByUsername(username string) (*domain.User, error)
	FindByEmailOrMobile(email, mobile string) (*domain.User, error)
}
