package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"petplace/config"
	"petplace/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type cachedCounts struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func setupTestRedis(t *testing.T) (service.CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()
	want := []cachedCounts{{Category: "cafe", Count: 12}, {Category: "park", Count: 3}}

	require.NoError(t, cache.Set(ctx, "categories:counts", want, time.Minute))
	assert.True(t, mr.Exists("petplace:categories:counts"))

	var got []cachedCounts
	require.NoError(t, cache.Get(ctx, "categories:counts", &got))
	assert.Equal(t, want, got)
}

func TestRedisCache_Miss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	var got []cachedCounts
	err := cache.Get(context.Background(), "absent", &got)

	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisCache_Expiry(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "featured", []string{"a"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got []string
	assert.ErrorIs(t, cache.Get(ctx, "featured", &got), service.ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "featured", []string{"a"}, time.Minute))
	require.NoError(t, cache.Delete(ctx, "featured"))

	assert.False(t, mr.Exists("petplace:featured"))
}

func TestRedisCache_CorruptValue(t *testing.T) {
	cache, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("petplace:featured", "{not json"))

	var got []string
	err := cache.Get(context.Background(), "featured", &got)

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
}

func TestNew_WithoutAddress(t *testing.T) {
	cache := New(Params{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: slog.Default()})
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", 1, time.Minute))

	var got int
	assert.ErrorIs(t, cache.Get(ctx, "k", &got), service.ErrCacheMiss)
}
