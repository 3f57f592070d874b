// Package memory is the slice-backed transaction store. It is the
// default backend: the whole dataset is a seeded fixture, so a guarded
// slice is all the storage this application needs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"finboard/internal/core"
	"finboard/internal/store"
)

type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

// New seeds a store with the fixture transactions, preserving their
// order.
func New(seed []core.Transaction) *Store {
	return &Store{items: append([]core.Transaction(nil), seed...)}
}

func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...), nil
}

func (s *Store) CreateTransaction(_ context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.ID == t.ID {
			return fmt.Errorf("duplicate transaction id %q", t.ID)
		}
	}
	s.items = append(s.items, t)
	return nil
}

// UpdateTransaction replaces the stored record in place, keeping its
// position in the sequence.
func (s *Store) UpdateTransaction(_ context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == t.ID {
			s.items[i] = t
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
