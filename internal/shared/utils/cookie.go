package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/shared/config"
	"github.com/lamaran-inc/lamaran/internal/shared/constants"
)

// SetSessionCookie sets the admin session token as an HttpOnly cookie
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		cookieName(cookieConfig),
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie removes the admin session cookie
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		cookieName(cookieConfig),
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetSessionCookie reads the session token cookie, returning "" when absent
func GetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) string {
	token, err := c.Cookie(cookieName(cookieConfig))
	if err != nil {
		return ""
	}
	return token
}

func cookieName(cookieConfig config.CookieConfig) string {
	if cookieConfig.Name != "" {
		return cookieConfig.Name
	}
	return constants.SessionCookieName
}

func parseSameSite(value string) http.SameSite {
	switch value {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
