package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/interfaces/http/handlers"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for category, tag and theme routes.
type CatalogRouteConfig struct {
	CategoryHandler *handlers.CategoryHandler
	TagHandler      *handlers.TagHandler
	ThemeHandler    *handlers.ThemeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures the theme catalog routes.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	categories := engine.Group("/api/categories")
	categories.Use(cfg.AuthMiddleware.RequireAuth())
	{
		categories.GET("", cfg.CategoryHandler.List)
		categories.POST("", cfg.CategoryHandler.Create)
		categories.PUT("/:id", cfg.CategoryHandler.Update)
		categories.DELETE("/:id", cfg.CategoryHandler.Delete)
	}

	tags := engine.Group("/api/tags")
	tags.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tags.GET("", cfg.TagHandler.List)
		tags.POST("", cfg.TagHandler.Create)
		tags.PUT("/:id", cfg.TagHandler.Update)
		tags.DELETE("/:id", cfg.TagHandler.Delete)
	}

	themes := engine.Group("/api/themes")
	{
		// The public catalog is readable without a session, either through
		// the ?public=true flag or the /public alias.
		themes.GET("", publicOrAdmin(cfg.AuthMiddleware, cfg.ThemeHandler.List, cfg.ThemeHandler.List))
		themes.GET("/public", cfg.ThemeHandler.List)

		protected := themes.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.GET("/:id", cfg.ThemeHandler.Get)
			protected.POST("", cfg.ThemeHandler.Create)
			protected.PUT("/:id", cfg.ThemeHandler.Update)
			protected.DELETE("/:id", cfg.ThemeHandler.Delete)
		}
	}
}
