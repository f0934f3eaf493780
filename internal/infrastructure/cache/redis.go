// Package cache holds the optional redis client used for login rate limiting.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lamaran-inc/lamaran/internal/shared/config"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

// NewRedisClient connects to redis when the feature is enabled. Returns nil
// when disabled; callers must treat a nil client as "no rate limiting".
func NewRedisClient(cfg *config.RedisConfig, log logger.Interface) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Infow("redis connection established", "addr", cfg.Addr)
	return client, nil
}
