package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/smart-leftovers/backend/config"
	"github.com/pageza/smart-leftovers/backend/internal/api"
	"github.com/pageza/smart-leftovers/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	recommendHandler *api.RecommendHandler,
	dashboardHandler *api.DashboardHandler,
	redisClient *redis.Client,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", api.HealthCheck)
	router.GET("/api/health", api.HealthCheck)

	v1 := router.Group("/api/v1")

	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    cfg.RateLimit.Window,
			Limit:     cfg.RateLimit.Requests,
			KeyPrefix: "rate_limit:api",
		})
		v1.Use(limiter.Middleware())
	}

	recommendHandler.RegisterRoutes(v1)
	dashboardHandler.RegisterRoutes(v1)

	return router
}
