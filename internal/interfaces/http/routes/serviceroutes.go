package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/interfaces/http/handlers"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/middleware"
)

// ServiceRouteConfig holds dependencies for service showcase routes.
type ServiceRouteConfig struct {
	ServiceHandler *handlers.ServiceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupServiceRoutes configures the service showcase routes.
func SetupServiceRoutes(engine *gin.Engine, cfg *ServiceRouteConfig) {
	services := engine.Group("/api/services")
	{
		services.GET("", publicOrAdmin(cfg.AuthMiddleware, cfg.ServiceHandler.GetPublic, cfg.ServiceHandler.List))
		services.GET("/public", cfg.ServiceHandler.GetPublic)

		protected := services.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.POST("", cfg.ServiceHandler.Create)
			protected.PUT("/:id", cfg.ServiceHandler.Update)
			protected.DELETE("/:id", cfg.ServiceHandler.Delete)

			protected.GET("/settings", cfg.ServiceHandler.GetSettings)
			protected.PUT("/settings", cfg.ServiceHandler.UpdateSettings)
		}
	}
}
