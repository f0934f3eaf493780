package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/infrastructure/auth"
	"github.com/lamaran-inc/lamaran/internal/shared/config"
	"github.com/lamaran-inc/lamaran/internal/shared/constants"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
	"github.com/lamaran-inc/lamaran/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService   *auth.JWTService
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, cookieConfig config.CookieConfig, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtService,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

// RequireAuth guards the admin API. The session cookie is the primary
// carrier; a Bearer header works for API clients.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionCookie(c, m.cookieConfig)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
				c.Abort()
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}

			token = parts[1]
		}

		claims, err := m.jwtService.Validate(token)
		if err != nil {
			m.logger.Warnw("failed to validate session token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserEmail, claims.Email)

		c.Next()
	}
}
