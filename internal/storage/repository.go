// Package storage is the sqlite-backed transaction store. The database
// is in-memory: the process owns the only copy of the data and nothing
// survives exit, matching the fixture-seeded scope of the application.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"finboard/internal/core"
	"finboard/internal/store"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

// NewRepository opens an in-memory sqlite database and applies the
// embedded migrations.
func NewRepository() (*Repository, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// The in-memory database lives on a single connection; a second
	// pooled connection would see an empty database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Seed loads the fixture transactions in order. Rowid order is the
// insertion order the store contract promises.
func (r *Repository) Seed(ctx context.Context, txs []core.Transaction) error {
	dbtx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	for _, t := range txs {
		if err := t.Validate(); err != nil {
			dbtx.Rollback()
			return fmt.Errorf("seed transaction %s: %w", t.ID, err)
		}
		if _, err := dbtx.ExecContext(ctx, insertSQL,
			t.ID, t.UserID, t.Amount.String(), t.Currency, t.Category, t.Date.String(), t.Note); err != nil {
			dbtx.Rollback()
			return fmt.Errorf("seed transaction %s: %w", t.ID, err)
		}
	}
	if err := dbtx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	slog.Debug("seeded sqlite store", "count", len(txs))
	return nil
}

const insertSQL = `INSERT INTO transactions (id, user_id, amount, currency, category, date, note)
VALUES (?, ?, ?, ?, ?, ?, ?)`

func (r *Repository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, amount, currency, category, date, note FROM transactions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			t            core.Transaction
			amount, date string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &amount, &t.Currency, &t.Category, &date, &t.Note); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if t.Amount, err = core.ParseAmount(amount); err != nil {
			return nil, fmt.Errorf("stored amount %q: %w", amount, err)
		}
		if t.Date, err = core.ParseDate(date); err != nil {
			return nil, fmt.Errorf("stored date %q: %w", date, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, insertSQL,
		t.ID, t.UserID, t.Amount.String(), t.Currency, t.Category, t.Date.String(), t.Note); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (r *Repository) UpdateTransaction(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET user_id = ?, amount = ?, currency = ?, category = ?, date = ?, note = ? WHERE id = ?`,
		t.UserID, t.Amount.String(), t.Currency, t.Category, t.Date.String(), t.Note, t.ID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteTransaction(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
