package database

import (
	"brewhub-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the GORM connection used by all repositories.
// TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
}
