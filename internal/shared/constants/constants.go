package constants

// Environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Gin context keys set by the auth middleware
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// SessionCookieName is the admin session cookie
const SessionCookieName = "mk_session"
