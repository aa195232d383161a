package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"time"

	"atoll/config"
	"atoll/infras/otel"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"

	defaultCleanupInterval = 5 * time.Minute
)

// Nil is returned, wrapped, by Get on a miss for every backend.
const Nil = redis.Nil

type Cache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

// New uses Redis when a client is configured and an in-process store otherwise.
func New(client *redis.Client, cfg *config.Config, ot otel.Otel) Cache {
	if client != nil {
		return NewRedisCache(client, ot)
	}

	cleanup := defaultCleanupInterval
	if cfg.Cache.CleanupIntervalSeconds > 0 {
		cleanup = time.Duration(cfg.Cache.CleanupIntervalSeconds) * time.Second
	}

	log.Info().Dur("cleanup", cleanup).Msg("Redis not configured, using in-process cache")

	return NewMemoryCache(cache.New(time.Duration(cfg.Cache.TTL)*time.Second, cleanup), ot)
}
