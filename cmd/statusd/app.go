package main

import (
	"context"
	"fmt"

	"github.com/adeilh/go-rakh-status/cache/redis"
	"github.com/adeilh/go-rakh-status/db/sql/postgres"
	"github.com/adeilh/go-rakh-status/httpx"
	"github.com/adeilh/go-rakh-status/internal/config"
	"github.com/adeilh/go-rakh-status/status"
	"go.uber.org/zap"
)

func newServer(cfg *config.Config, log *zap.Logger) *httpx.Server {
	opts := []httpx.ServerOption{
		httpx.WithAddress(cfg.Server.Address),
		httpx.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
		httpx.WithLogger(log),
	}
	if len(cfg.Server.CORSOrigins) > 0 {
		opts = append(opts, httpx.WithCORSOrigins(cfg.Server.CORSOrigins...))
	}

	server := httpx.NewServer(opts...)
	server.RegisterRoutes(func(a *httpx.App) {
		a.GET("/healthz", func(c httpx.Context) error {
			return c.JSON(httpx.StatusOK, map[string]any{"status": "ok", "entries": status.Len()})
		})
		httpx.RegisterCatalogRoutes(a, cfg.Server.Prefix)
	})
	return server
}

func shutdownTimeout(cfg *config.Config) httpx.StartOption {
	return httpx.WithShutdownTimeout(cfg.Server.ShutdownTimeout)
}

// prepare runs the optional startup jobs: mirroring the table into
// PostgreSQL and preloading the shared Redis lookup cache.
func prepare(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.Database.Enabled {
		if err := seedDatabase(ctx, cfg.Database, log); err != nil {
			return err
		}
	}
	if cfg.Redis.Enabled {
		if err := warmCache(ctx, cfg.Redis, log); err != nil {
			return err
		}
	}
	return nil
}

func seedDatabase(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) error {
	db, err := postgres.Open(ctx,
		postgres.WithDSN(cfg.DSN),
		postgres.WithPool(cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime),
	)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := postgres.NewStatusRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	n, err := repo.Seed(ctx, status.Entries())
	if err != nil {
		return err
	}
	log.Info("status table mirrored to postgres", zap.Int64("rows", n))
	return nil
}

func warmCache(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) error {
	opts := redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		Prefix:   cfg.Prefix,
	}
	if cfg.URL != "" {
		var err error
		if opts, err = redis.FromURL(cfg.URL, cfg.Prefix); err != nil {
			return err
		}
	}
	store := redis.NewStore(opts)
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		return err
	}
	n, err := httpx.WarmCatalogCache(ctx, store, cfg.TTL)
	if err != nil {
		return fmt.Errorf("warm cache: %w", err)
	}
	log.Info("lookup cache warmed", zap.Int("keys", n), zap.String("prefix", cfg.Prefix))
	return nil
}
