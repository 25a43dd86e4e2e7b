package bootstrap

import (
	"context"

	"glamping-api/internal/infra/cache"
	"glamping-api/internal/pkg/config"
	"glamping-api/internal/usecase/commands"
	"glamping-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		NewAvailabilityCache,
		func(c queries.AvailabilityCache) commands.AvailabilityInvalidator { return c },
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}

// NewAvailabilityCache falls back to a no-op cache when Redis is not configured.
func NewAvailabilityCache(client *redis.Client, cfg config.Config) queries.AvailabilityCache {
	if client == nil {
		return cache.NewNopAvailabilityCache()
	}
	return cache.NewAvailabilityCache(client, cfg.Redis.AvailabilityTTL)
}
