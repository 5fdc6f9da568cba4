package service

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CacheService stores JSON-encodable values for read-mostly queries.
type CacheService interface {
	// Get decodes the value stored under key into dest.
	Get(ctx context.Context, key string, dest any) error

	// Set encodes value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes key.
	Delete(ctx context.Context, key string) error
}
