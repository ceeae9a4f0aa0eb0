package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adeilh/go-rakh-status/cache"
	goredis "github.com/redis/go-redis/v9"
)

// Store implements cache.Store on top of go-redis.
type Store struct {
	client goredis.UniversalClient
	prefix string
}

// NewStore builds a Redis-backed cache store.
func NewStore(opts Options) *Store {
	return NewStoreFromClient(goredis.NewClient(opts.client()), opts.Prefix)
}

// NewStoreFromClient wraps an existing client, e.g. one shared with other
// components or a mock in tests.
func NewStoreFromClient(client goredis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: strings.TrimSpace(prefix)}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, cache.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis: GET: %w", err)
	}
	return payload, nil
}

// Set stores value under key; a non-positive ttl keeps the key until deleted.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(key), value, normalizeTTL(ttl)).Err(); err != nil {
		return fmt.Errorf("redis: SET: %w", err)
	}
	return nil
}

// SetMany writes all items in a single pipeline.
func (s *Store) SetMany(ctx context.Context, items map[string][]byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ttl = normalizeTTL(ttl)
	_, err := s.client.Pipelined(ctx, func(p goredis.Pipeliner) error {
		for k, v := range items {
			p.Set(ctx, s.key(k), v, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: pipeline: %w", err)
	}
	return nil
}

// Delete removes key, returning cache.ErrNotFound when nothing was deleted.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := s.client.Del(ctx, s.key(key)).Result()
	if err != nil {
		return fmt.Errorf("redis: DEL: %w", err)
	}
	if n == 0 {
		return cache.ErrNotFound
	}
	return nil
}

func (s *Store) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}

func normalizeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	if ttl < time.Millisecond {
		return time.Millisecond
	}
	return ttl
}
