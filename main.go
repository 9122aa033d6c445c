package main

import (
	"log"

	api "brewhub-backend/cmd/api"
	authdomain "brewhub-backend/internal/auth/domain"
	authRepo "brewhub-backend/internal/auth/repository"
	authUsecase "brewhub-backend/internal/auth/usecase"
	reviewdomain "brewhub-backend/internal/review/domain"
	reviewRepo "brewhub-backend/internal/review/repository"
	reviewUsecase "brewhub-backend/internal/review/usecase"
	"brewhub-backend/pkg/cache"
	"brewhub-backend/pkg/config"
	"brewhub-backend/pkg/database"
	"brewhub-backend/pkg/openbrewery"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &reviewdomain.ReviewEntry{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	reviewRepository := reviewRepo.NewReviewRepository(db)

	// Initialize brewery directory client
	directory := openbrewery.NewClient(cfg.BreweryAPIBaseURL, cfg.BreweryAPITimeout)

	// Directory response cache is optional; a nil cache disables it
	var directoryCache *cache.Cache
	if cfg.RedisAddr != "" {
		directoryCache = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
		log.Printf("Directory cache enabled (redis at %s, ttl %s)", cfg.RedisAddr, cfg.CacheTTL)
	} else {
		log.Println("REDIS_ADDR not set, directory cache disabled")
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	reviewUsecaseInstance := reviewUsecase.NewReviewUsecase(reviewRepository, directory, directoryCache)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, reviewUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
