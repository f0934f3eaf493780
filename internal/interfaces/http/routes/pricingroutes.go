package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/interfaces/http/handlers"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/middleware"
)

// PricingRouteConfig holds dependencies for pricing plan routes.
type PricingRouteConfig struct {
	PlanHandler    *handlers.PlanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPricingRoutes configures the pricing plan routes.
func SetupPricingRoutes(engine *gin.Engine, cfg *PricingRouteConfig) {
	pricing := engine.Group("/api/pricing")
	{
		pricing.GET("", publicOrAdmin(cfg.AuthMiddleware, cfg.PlanHandler.GetPublic, cfg.PlanHandler.List))
		pricing.GET("/public", cfg.PlanHandler.GetPublic)

		protected := pricing.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.POST("", cfg.PlanHandler.Create)
			protected.PUT("/:id", cfg.PlanHandler.Update)
			protected.DELETE("/:id", cfg.PlanHandler.Delete)

			protected.GET("/settings", cfg.PlanHandler.GetSettings)
			protected.PUT("/settings", cfg.PlanHandler.UpdateSettings)
		}
	}
}
