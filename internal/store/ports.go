// Package store defines the ports the transaction store implementations
// satisfy. The store owns the canonical, insertion-ordered transaction
// list; everything the UI shows is derived from it on demand.
package store

import (
	"context"
	"errors"

	"finboard/internal/core"
)

// ErrNotFound is returned when an update or delete names an id the
// store does not hold.
var ErrNotFound = errors.New("transaction not found")

type (
	// Lister returns the full transaction list in insertion order.
	Lister interface {
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	// Writer mutates the canonical list. Mutations are atomic: they
	// apply fully or not at all.
	Writer interface {
		CreateTransaction(ctx context.Context, t core.Transaction) error
		UpdateTransaction(ctx context.Context, t core.Transaction) error
		DeleteTransaction(ctx context.Context, id string) error
	}

	// Store is the full contract the backend factory hands out.
	Store interface {
		Lister
		Writer
	}
)
