package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	srv, err := cfg.buildServer()
	if err != nil {
		slog.Error("creating shop", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		slog.Error("running shop", "error", err)
		os.Exit(1)
	}

	slog.Info("exiting")
}
