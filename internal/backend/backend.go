// Package backend selects and builds the transaction store
// implementation.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"finboard/internal/core"
	"finboard/internal/storage"
	"finboard/internal/store"
	"finboard/internal/store/memory"
)

// Type names a store implementation.
type Type string

const (
	Memory Type = "memory"
	SQLite Type = "sqlite"
)

func (t Type) String() string { return string(t) }

// IsValid reports whether the type names a known backend.
func (t Type) IsValid() bool {
	switch t {
	case Memory, SQLite:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result carries the built store and its cleanup function, if any.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Factory builds stores seeded with the fixture transactions.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the store named by t and seeds it.
func (f *Factory) Create(ctx context.Context, t Type, seed []core.Transaction) (*Result, error) {
	switch t {
	case Memory:
		f.logger.Info("initialized memory store", "backend", t, "seeded", len(seed))
		return &Result{Store: memory.New(seed)}, nil
	case SQLite:
		repo, err := storage.NewRepository()
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		if err := repo.Seed(ctx, seed); err != nil {
			repo.Close()
			return nil, fmt.Errorf("seed sqlite store: %w", err)
		}
		f.logger.Info("initialized sqlite store", "backend", t, "seeded", len(seed))
		return &Result{Store: repo, Cleanup: repo.Close}, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", t)
	}
}
