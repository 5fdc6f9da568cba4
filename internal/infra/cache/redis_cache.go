// Package cache provides the read-through cache used for featured businesses and category counts.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"petplace/config"
	"petplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "petplace:"

type redisCache struct {
	client *redis.Client
}

// Params holds dependencies for the cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis backed cache, or a cache that always misses when no address is configured.
func New(params Params) service.CacheService {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, caching disabled")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// A cold cache only costs database reads.
				params.Logger.Warn("Redis ping failed", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisCache(client)
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client) service.CacheService {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return service.ErrCacheMiss
		}

		return errors.Wrap(err, "redis get")
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Wrap(err, "unmarshal cached value")
	}

	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "marshal cached value")
	}

	return errors.Wrap(c.client.Set(ctx, keyPrefix+key, data, ttl).Err(), "redis set")
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return errors.Wrap(c.client.Del(ctx, keyPrefix+key).Err(), "redis del")
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, any) error { return service.ErrCacheMiss }

func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }

func (noopCache) Delete(context.Context, string) error { return nil }
