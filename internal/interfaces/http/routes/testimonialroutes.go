package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/interfaces/http/handlers"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/middleware"
)

// TestimonialRouteConfig holds dependencies for testimonial routes.
type TestimonialRouteConfig struct {
	TestimonialHandler *handlers.TestimonialHandler
	AuthMiddleware     *middleware.AuthMiddleware
	RateLimiter        *middleware.RateLimiter
}

// SetupTestimonialRoutes configures the testimonial routes.
func SetupTestimonialRoutes(engine *gin.Engine, cfg *TestimonialRouteConfig) {
	testimonials := engine.Group("/api/testimonials")
	{
		testimonials.GET("", publicOrAdmin(cfg.AuthMiddleware, cfg.TestimonialHandler.GetPublic, cfg.TestimonialHandler.List))
		testimonials.GET("/public", cfg.TestimonialHandler.GetPublic)
		testimonials.POST("/submit", cfg.RateLimiter.Limit(), cfg.TestimonialHandler.Submit)

		protected := testimonials.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.POST("", cfg.TestimonialHandler.Create)
			protected.PUT("/:id", cfg.TestimonialHandler.Update)
			protected.PATCH("/:id/approval", cfg.TestimonialHandler.Approve)
			protected.DELETE("/:id", cfg.TestimonialHandler.Delete)

			protected.GET("/settings", cfg.TestimonialHandler.GetSettings)
			protected.PUT("/settings", cfg.TestimonialHandler.UpdateSettings)
		}
	}
}
