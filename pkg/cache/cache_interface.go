package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when the requested key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// Cache abstracts the read-through cache used by the services. Values
// are stored as JSON; Get unmarshals into dest.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
	Close() error
}
