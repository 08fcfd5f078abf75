package http

import (
	"github.com/gin-gonic/gin"
	"github.com/petscout/backend/config"
	"github.com/rs/zerolog"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, logger zerolog.Logger, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		animals := v1.Group("/animals")
		{
			animals.GET("", handler.ListAnimals)
			animals.GET("/nearby", handler.SearchNearby)
			animals.GET("/:id", handler.GetAnimal)
		}

		v1.GET("/organizations", handler.ListOrganizations)

		// Developer tooling: mode toggle, cache controls, redacted config
		dev := v1.Group("/dev")
		{
			dev.GET("/status", handler.DevStatus)
			dev.POST("/mock", handler.SetMockMode)
			dev.POST("/cache/clear", handler.ClearCache)
		}
	}

	return router
}
