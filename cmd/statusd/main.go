// Command statusd serves the HTTP status-code table as a read-only JSON API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adeilh/go-rakh-status/internal/config"
	"github.com/adeilh/go-rakh-status/internal/logger"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "statusd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("statusd", pflag.ContinueOnError)
	config.Flags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := prepare(ctx, cfg, log); err != nil {
		return err
	}

	server := newServer(cfg, log)
	err = server.Start(ctx, shutdownTimeout(cfg))
	if errors.Is(err, context.Canceled) {
		log.Info("statusd stopped")
		return nil
	}
	if err != nil {
		log.Error("statusd failed", zap.Error(err))
	}
	return err
}
