package repository

import (
	"sync"
	"time"

	"brewhub-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryUserRepository keeps users in-process, for tests and local runs
// without Postgres. It mirrors the database's unique indexes by returning
// gorm.ErrDuplicatedKey on conflicting inserts.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // key: user ID
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (r *memoryUserRepository) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email || u.Mobile == user.Mobile {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepository) FindByUsername(username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByEmailOrMobile(email, mobile string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email || u.Mobile == mobile {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}
