// Package fixture decodes the embedded JSON seed data.
package fixture

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"golang.org/x/sync/errgroup"

	"finboard/assets"
	"finboard/internal/core"
)

// Load decodes and validates both fixtures from the embedded
// filesystem.
func Load() ([]core.Transaction, []core.User, error) {
	return LoadFS(assets.FixturesFS, assets.TransactionsPath, assets.UsersPath)
}

// LoadFS decodes the transaction and user fixtures from fsys. The two
// files are independent, so they are decoded in parallel.
func LoadFS(fsys fs.FS, transactionsPath, usersPath string) ([]core.Transaction, []core.User, error) {
	var (
		txs   []core.Transaction
		users []core.User
	)

	var g errgroup.Group
	g.Go(func() error {
		data, err := fs.ReadFile(fsys, transactionsPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", transactionsPath, err)
		}
		if err := json.Unmarshal(data, &txs); err != nil {
			return fmt.Errorf("decode %s: %w", transactionsPath, err)
		}
		for _, t := range txs {
			if err := t.Validate(); err != nil {
				return fmt.Errorf("fixture transaction %s: %w", t.ID, err)
			}
		}
		return nil
	})
	g.Go(func() error {
		data, err := fs.ReadFile(fsys, usersPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", usersPath, err)
		}
		if err := json.Unmarshal(data, &users); err != nil {
			return fmt.Errorf("decode %s: %w", usersPath, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return txs, users, nil
}
