// Package services orchestrates the store, the derivation pipeline and
// the aggregate cache on behalf of the UI.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finboard/internal/cache"
	"finboard/internal/core"
	"finboard/internal/pipeline"
	"finboard/internal/store"
)

// Dashboard bundles the two chart projections for one filter set.
type Dashboard struct {
	Pie []pipeline.PieSlice
	Bar pipeline.BarData
}

// TransactionService answers row and chart queries and applies
// mutations. Dashboard aggregates are memoized on (revision, owner,
// filters); every mutation bumps the revision, so stale entries are
// never served and simply age out of the LRU.
type TransactionService struct {
	store     store.Store
	logger    *slog.Logger
	dashboard *cache.LRUCache[Dashboard]
	revision  uint64
}

func NewTransactionService(st store.Store, logger *slog.Logger) *TransactionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionService{
		store:     st,
		logger:    logger,
		dashboard: cache.NewLRUCache[Dashboard](32, 5*time.Minute),
	}
}

// Rows returns one page of filtered display rows plus the total row
// count before pagination.
func (s *TransactionService) Rows(ctx context.Context, ownerID int64, f pipeline.Filters, page, pageSize int) ([]pipeline.Row, int, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	rows := pipeline.DisplayRows(pipeline.Apply(txs, ownerID, f))
	total := len(rows)
	if pageSize <= 0 {
		return rows, total, nil
	}
	start := page * pageSize
	if start >= total {
		return nil, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return rows[start:end], total, nil
}

// Dashboard derives the pie and bar chart projections.
//
// The pie is computed from the owner+currency filtered set with the
// minimum applied to group totals after aggregation; the bar applies
// the minimum per transaction. That mirrors how the two charts treat
// the threshold differently.
func (s *TransactionService) Dashboard(ctx context.Context, ownerID int64, f pipeline.Filters) (Dashboard, error) {
	key := s.dashboardKey(ownerID, f)
	if d, ok := s.dashboard.Get(key); ok {
		return d, nil
	}

	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list transactions: %w", err)
	}

	pieSource := pipeline.Apply(txs, ownerID, pipeline.Filters{Currency: f.Currency, FromDate: f.FromDate})
	barSource := pipeline.Apply(txs, ownerID, f)

	d := Dashboard{
		Pie: pipeline.ByCategoryAndCurrency(pieSource, f.MinAmount),
		Bar: pipeline.ByPeriodAndCategory(barSource),
	}
	s.dashboard.Set(key, d)
	return d, nil
}

// Currencies returns the distinct currencies across the whole store,
// for filter controls.
func (s *TransactionService) Currencies(ctx context.Context) ([]string, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return pipeline.UniqueCurrencies(txs), nil
}

// Get returns one stored transaction by id, for seeding the edit and
// preview forms.
func (s *TransactionService) Get(ctx context.Context, id string) (core.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("list transactions: %w", err)
	}
	for _, t := range txs {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Transaction{}, store.ErrNotFound
}

// Create appends a new transaction.
func (s *TransactionService) Create(ctx context.Context, t core.Transaction) error {
	if err := s.store.CreateTransaction(ctx, t); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	s.revision++
	s.logger.Info("transaction created", "transaction_id", t.ID, "user_id", t.UserID,
		"amount", t.Amount.String(), "currency", t.Currency, "category", t.Category)
	return nil
}

// Update replaces a stored transaction, keeping its position.
func (s *TransactionService) Update(ctx context.Context, t core.Transaction) error {
	if err := s.store.UpdateTransaction(ctx, t); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	s.revision++
	s.logger.Info("transaction updated", "transaction_id", t.ID)
	return nil
}

// Delete removes a transaction by id.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	s.revision++
	s.logger.Info("transaction deleted", "transaction_id", id)
	return nil
}

func (s *TransactionService) dashboardKey(ownerID int64, f pipeline.Filters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d|%s|", s.revision, ownerID, f.Currency)
	if f.MinAmount != nil {
		b.WriteString(f.MinAmount.String())
	}
	b.WriteByte('|')
	if f.FromDate != nil {
		b.WriteString(f.FromDate.String())
	}
	return b.String()
}
