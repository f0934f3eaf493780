package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/interfaces/http/handlers"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthHandler.Logout)

		// Creating admin accounts requires an existing admin session.
		auth.POST("/register", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Register)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
