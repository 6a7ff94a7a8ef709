// Package redis holds the Redis client setup and the dashboard summary
// cache. The cache is an optimisation layer: the application stays fully
// functional when Redis is absent.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teamtrack/employee-system/internal/infrastructure/config"
)

const connectTimeout = 5 * time.Second

// clientOptions maps the application's Redis settings onto go-redis options.
func clientOptions(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}
}

// Connect builds a client from the application config and verifies the
// server is reachable before handing it out. Callers treat a connect
// failure as "run without the cache", not as a startup error.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(clientOptions(cfg))

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
