package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const shutdownTimeout = 10 * time.Second

// shutdown stops the listener, waiting for in-flight requests, then closes
// the message bus.
func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("Shutting down server")
	if err := s.E.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if s.deps.Bus != nil {
		if err := s.deps.Bus.Close(); err != nil {
			return fmt.Errorf("failed to close message bus: %w", err)
		}
	}
	return nil
}
