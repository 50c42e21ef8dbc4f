package router

import (
	"context"
	"net/http"
	"time"

	"restaurant-backend/internal/config"
	"restaurant-backend/internal/handlers"
	"restaurant-backend/internal/middleware"
	"restaurant-backend/internal/repositories"
	"restaurant-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRouter configures and returns the Gin router. main passes a Redis
// client even when Redis was unreachable at startup; the lock layer then
// returns errors (writes fail closed) and the cache passes reads through
// to the DB, per §4.1/§4.3. The lock layer does not accept a nil rdb.
func SetupRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	// Use gin.New() instead of Default() to skip default logger
	r := gin.New()

	// Add middlewares
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg))

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)

	// Initialize services
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(db, cfg, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)

	// Health check endpoint, with a dependency report covering the database
	// and the reservation engine's Redis-backed lock/cache services.
	r.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		deps := gin.H{}
		healthy := true

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(pingCtx) != nil {
			deps["database"] = "unreachable"
			healthy = false
		} else {
			deps["database"] = "ok"
		}

		if rdb == nil {
			deps["redis"] = "not configured"
		} else if err := rdb.Ping(pingCtx).Err(); err != nil {
			deps["redis"] = "unreachable"
			healthy = false
		} else {
			deps["redis"] = "ok"
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":       map[bool]string{true: "healthy", false: "unhealthy"}[healthy],
			"service":      "restaurant-backend",
			"dependencies": deps,
		})
	})

	// Public API routes
	api := r.Group("/api/v1")
	{
		// Setup authentication routes
		setupAuthRoutes(api, authHandler)

		// Setup public menu routes (no authentication required for viewing menu)
		setupPublicMenuRoutes(api, db)
	}

	// Protected API routes
	protected := api.Group("")
	protected.Use(middleware.RequireAuth(authService))
	protected.Use(middleware.SetTenantContext(db))
	{
		// Setup business routes (menus, orders, reservations)
		setupBusinessRoutes(protected, db, cfg, rdb)

		// Setup restaurant routes (includes public registration)
		setupRestaurantRoutes(api, protected, db, emailService)

		// Setup platform routes (KAM management)
		setupPlatformRoutes(protected, db, authService)

		// Setup image routes (S3)
		setupImageRoutes(protected, cfg)
	}

	return r
}

// corsMiddleware handles CORS
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
			// When wildcard is configured but credentials are needed,
			// echo back the requesting origin instead of using "*"
			if origin != "" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			}
		} else {
			// Check if origin is in allowed list
			for _, allowedOrigin := range cfg.CORSAllowedOrigins {
				if origin == allowedOrigin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
