package services

import (
	"context"
	"errors"
	"time"
)

// CacheService is the slice of the cache the services need. The redis
// implementation lives in pkg/cache; tests use an in-memory fake.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// NewNoopCache returns a cache that never hits. Used when redis is
// disabled; callers already treat a miss as "go to the database".
func NewNoopCache() CacheService {
	return noopCache{}
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) error {
	return errors.New("cache disabled")
}

func (noopCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (noopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}
