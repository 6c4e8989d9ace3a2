package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/livereload"
)

// Start runs the background services and the HTTP listener until ctx is
// canceled, then shuts everything down.
func (s *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.startBackground(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.GetAppAddr())
		if err := s.E.Start(s.Cfg.GetAppAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server stopped: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}
	return s.shutdown()
}

// startBackground starts the services that run beside the listener: the
// contact notifier and, when enabled, the live reload hub and content watcher.
func (s *Server) startBackground(ctx context.Context) error {
	if s.deps.Notifier != nil && s.deps.Bus != nil {
		if err := s.deps.Notifier.Start(ctx, s.deps.Bus); err != nil {
			return fmt.Errorf("failed to start contact notifier: %w", err)
		}
	}

	if s.Cfg.GetLiveReload() && s.deps.Hub != nil {
		go s.deps.Hub.Run(ctx)
		s.deps.Content.OnChange(func(*domain.Catalog) {
			livereload.Notify(ctx, s.deps.Hub)
		})
	}

	if s.Cfg.GetContentWatch() {
		if s.Cfg.GetContentPath() == "" {
			slog.Warn("CONTENT_WATCH is set but no CONTENT_PATH is configured, not watching")
			return nil
		}
		if err := s.deps.Content.Watch(ctx); err != nil {
			return fmt.Errorf("failed to watch content: %w", err)
		}
	}
	return nil
}
