package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"glamping-api/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Connect returns a nil client when no URL is configured.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	if cfg.URL == "" {
		slog.Warn("REDIS_URL not configured, availability cache disabled")
		return nil, func() {}, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}
