package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/salon/internal/app"
	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/logging"
	"github.com/nfrund/salon/internal/server"
	"github.com/samber/do/v2"
)

func main() {
	cfg := config.New()
	logging.New() // Initialize the structured logger

	injector := app.New(cfg)
	s, err := do.Invoke[*server.Server](injector)
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Start(ctx); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
