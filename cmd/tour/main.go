package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mohammadpnp/user-accounts/internal/bootstrap"
)

func main() {
	cfg, err := bootstrap.LoadConfig(os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := bootstrap.NewLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error("tour failed", "error", err)
		stop()
		os.Exit(1)
	}
}
