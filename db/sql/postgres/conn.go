package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

var ErrMissingDSN = errors.New("postgres: DSN is required")

// Options configures the connection used to mirror the status table.
type Options struct {
	DSN string
	// ApplicationName shows up in pg_stat_activity.
	ApplicationName string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Option func(*Options)

// WithDSN sets the lib/pq connection string, URL or key=value form.
func WithDSN(dsn string) Option {
	return func(o *Options) {
		if dsn != "" {
			o.DSN = dsn
		}
	}
}

func WithApplicationName(name string) Option {
	return func(o *Options) { o.ApplicationName = strings.TrimSpace(name) }
}

// WithPool sets the pool limits; non-positive values keep the defaults.
func WithPool(maxOpen, maxIdle int, lifetime time.Duration) Option {
	return func(o *Options) {
		if maxOpen > 0 {
			o.MaxOpenConns = maxOpen
		}
		if maxIdle > 0 {
			o.MaxIdleConns = maxIdle
		}
		if lifetime > 0 {
			o.ConnMaxLifetime = lifetime
		}
	}
}

func defaultOptions() Options {
	return Options{
		ApplicationName: "statusd",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// Open connects to PostgreSQL, applies pool settings and verifies the
// connection within ctx.
func Open(ctx context.Context, opts ...Option) (*sql.DB, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	dsn, err := cfg.dataSource()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return db, nil
}

// dataSource returns the key=value DSN lib/pq will dial, with
// application_name appended when set.
func (o Options) dataSource() (string, error) {
	dsn := strings.TrimSpace(o.DSN)
	if dsn == "" {
		return "", ErrMissingDSN
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		parsed, err := pq.ParseURL(dsn)
		if err != nil {
			return "", fmt.Errorf("postgres: parse dsn: %w", err)
		}
		dsn = parsed
	}
	if o.ApplicationName != "" && !strings.Contains(dsn, "application_name=") {
		dsn += " application_name=" + quoteValue(o.ApplicationName)
	}
	return dsn, nil
}

func quoteValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
