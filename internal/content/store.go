package content

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/nfrund/salon/internal/domain"
	"github.com/spf13/afero"
)

// Provider gives read access to the current catalog.
type Provider interface {
	Catalog() *domain.Catalog
}

// Store holds the active catalog and swaps it atomically on reload. Readers
// always see a complete, validated catalog.
type Store struct {
	fs   afero.Fs
	path string

	current atomic.Pointer[domain.Catalog]

	mu        sync.Mutex
	listeners []func(*domain.Catalog)
}

// NewStore loads the catalog at path from fs.
func NewStore(fs afero.Fs, path string) (*Store, error) {
	cat, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	s := &Store{fs: fs, path: path}
	s.current.Store(cat)
	return s, nil
}

// NewStaticStore wraps an already loaded catalog. Reload is a no-op.
func NewStaticStore(cat *domain.Catalog) *Store {
	s := &Store{}
	s.current.Store(cat)
	return s
}

// Catalog returns the active catalog. Callers must not modify it.
func (s *Store) Catalog() *domain.Catalog {
	return s.current.Load()
}

// Path returns the file the store loads from, empty for static stores.
func (s *Store) Path() string { return s.path }

// OnChange registers fn to be called after each successful reload.
func (s *Store) OnChange(fn func(*domain.Catalog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload re-reads the catalog. On failure the previous catalog stays active.
func (s *Store) Reload() error {
	if s.fs == nil {
		return nil
	}
	cat, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.current.Store(cat)
	slog.Info("Catalog reloaded", "path", s.path, "categories", len(cat.Services))

	s.mu.Lock()
	listeners := append([]func(*domain.Catalog){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(cat)
	}
	return nil
}
