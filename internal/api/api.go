package api

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dishcovery/backend/config"
	"github.com/dishcovery/backend/internal/middleware"
	"github.com/dishcovery/backend/internal/service"
)

// SetupAPI wires the services and registers every route under /api/v1.
// redisClient may be nil, in which case rate limiting is disabled.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	v1 := router.Group("/api/v1")
	{
		// Initialize services
		authService := service.NewAuthService(db, cfg.JWTSecret)
		recipeService := service.NewRecipeService(db)
		profileService := service.NewProfileService(db)
		emailService := service.NewEmailService()

		var imageService *service.ImageService
		if s3Cfg, err := config.NewS3Config(context.Background()); err != nil {
			log.Printf("S3 unavailable, image uploads disabled: %v", err)
		} else {
			imageService = service.NewImageService(s3Cfg)
		}

		var limiter *middleware.RateLimiter
		if redisClient != nil {
			limiter = middleware.NewMutationRateLimiter(redisClient)
		}

		// Initialize handlers
		authHandler := NewAuthHandler(authService)
		recipeHandler := NewRecipeHandler(recipeService, authService, emailService, imageService, limiter)
		profileHandler := NewProfileHandler(profileService, authService, limiter)

		// Register routes
		authHandler.RegisterRoutes(v1)
		recipeHandler.RegisterRoutes(v1)
		profileHandler.RegisterRoutes(v1)
	}
}
