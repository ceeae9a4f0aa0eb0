package cache

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("cache: key not found")

// Store represents a simple TTL-based cache abstraction that can be backed
// by memory, Redis, or any other KV store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// BatchSetter is implemented by stores that can write many keys in one round trip.
type BatchSetter interface {
	SetMany(ctx context.Context, items map[string][]byte, ttl time.Duration) error
}

// SetAll writes items through SetMany when the store supports it and falls
// back to one Set per key otherwise.
func SetAll(ctx context.Context, s Store, items map[string][]byte, ttl time.Duration) error {
	if len(items) == 0 {
		return nil
	}
	if b, ok := s.(BatchSetter); ok {
		return b.SetMany(ctx, items, ttl)
	}
	for k, v := range items {
		if err := s.Set(ctx, k, v, ttl); err != nil {
			return err
		}
	}
	return nil
}
