package config

import "fmt"

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GetAddr returns the listen address in host:port form
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // mysql or sqlite
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	OutputPath string `mapstructure:"output_path"`
}

// AuthConfig holds session guard settings
type AuthConfig struct {
	JWT    JWTConfig    `mapstructure:"jwt"`
	Cookie CookieConfig `mapstructure:"cookie"`
	Bcrypt BcryptConfig `mapstructure:"bcrypt"`
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret         string `mapstructure:"secret"`
	ExpiresInHours int    `mapstructure:"expires_in_hours"`
}

// CookieConfig holds session cookie settings
type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

// BcryptConfig holds password hashing settings
type BcryptConfig struct {
	Cost int `mapstructure:"cost"`
}

// StorageConfig holds asset store settings
type StorageConfig struct {
	// BaseDir is the filesystem root the store writes under, e.g. ./public
	BaseDir string `mapstructure:"base_dir"`
	// BaseURL is the public prefix returned in asset URLs, e.g. /uploads
	BaseURL string `mapstructure:"base_url"`
	// MaxUploadBytes caps a single image payload
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

// RedisConfig holds redis settings for rate limiting
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
