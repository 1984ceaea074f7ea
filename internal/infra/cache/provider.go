package cache

import (
	"context"
	"log/slog"
	"time"

	"freshmarket/config"
	"freshmarket/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// noopCache is a no-op implementation when Redis is disabled. Every read is
// a miss, so the services always recompute.
type noopCache struct{}

func (noopCache) Get(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (noopCache) Set(_ context.Context, _ string, _ string, _ time.Duration) error {
	return nil
}

// CacheParams holds dependencies for AggregateCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAggregateCache creates an AggregateCache based on configuration.
func NewAggregateCache(params CacheParams) service.AggregateCache {
	cfg := params.Config.Redis
	logger := params.Logger

	// If Redis is not configured, return a no-op cache
	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, using no-op aggregate cache")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	logger.Info("Using Redis aggregate cache",
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
	)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing Redis client")

			return client.Close()
		},
	})

	return NewRedisCache(client)
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAggregateCache),
)
