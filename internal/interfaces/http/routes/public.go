package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/interfaces/http/middleware"
)

// publicOrAdmin serves a collection GET that doubles as the public read.
// A public=true query answers with the visitor view and no session check;
// anything else must carry an admin session and gets the admin view.
func publicOrAdmin(auth *middleware.AuthMiddleware, public, admin gin.HandlerFunc) gin.HandlerFunc {
	requireAuth := auth.RequireAuth()
	return func(c *gin.Context) {
		if c.Query("public") == "true" {
			public(c)
			return
		}
		requireAuth(c)
		if c.IsAborted() {
			return
		}
		admin(c)
	}
}
