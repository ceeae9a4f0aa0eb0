package redis

import (
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Options selects the Redis server and the key namespace for a Store.
type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix namespaces every key as "<prefix>:<key>"; empty leaves keys as given.
	Prefix string
	// Timeout bounds dial, read and write; zero means two seconds.
	Timeout  time.Duration
	PoolSize int
}

// FromURL parses a redis:// or rediss:// URL into Options.
func FromURL(rawURL, prefix string) (Options, error) {
	parsed, err := goredis.ParseURL(rawURL)
	if err != nil {
		return Options{}, fmt.Errorf("redis: parse url: %w", err)
	}
	return Options{
		Addr:     parsed.Addr,
		Password: parsed.Password,
		DB:       parsed.DB,
		Prefix:   prefix,
		Timeout:  parsed.ReadTimeout,
		PoolSize: parsed.PoolSize,
	}, nil
}

func (o Options) client() *goredis.Options {
	addr := strings.TrimSpace(o.Addr)
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pool := o.PoolSize
	if pool <= 0 {
		pool = 8
	}
	return &goredis.Options{
		Addr:         addr,
		Password:     o.Password,
		DB:           max(o.DB, 0),
		DialTimeout:  2 * timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		PoolSize:     pool,
	}
}
