package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the store whenever its file changes on disk, until ctx is
// canceled. The parent directory is watched so that editors which replace
// the file on save are picked up too. Failed reloads are logged and the
// previous catalog is kept.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return fmt.Errorf("store has no backing file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}

	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	slog.Info("Watching catalog for changes", "path", target)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				slog.Debug("Catalog file event", "event", event.Op.String(), "path", event.Name)
				if err := s.Reload(); err != nil {
					slog.Error("Failed to reload catalog, keeping previous version", "path", target, "error", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Catalog watcher error", "error", err)
			}
		}
	}()
	return nil
}
