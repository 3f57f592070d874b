// Package pipeline derives table rows and chart aggregates from the
// transaction list. Every function is pure and total: filters that are
// unset widen the result, they never narrow it.
package pipeline

import (
	"github.com/shopspring/decimal"

	"finboard/internal/core"
)

// Filters narrows the transaction list before derivation. A nil pointer
// or empty string means the filter is not active.
type Filters struct {
	Currency  string
	MinAmount *decimal.Decimal
	FromDate  *core.Date
}

// Row is a per-transaction projection for table rendering: formatted
// date, defaulted note. Never persisted.
type Row struct {
	ID       string
	Date     string
	Category string
	Amount   decimal.Decimal
	Currency string
	Note     string
}

// ForOwner retains transactions owned by ownerID, in original order.
func ForOwner(txs []core.Transaction, ownerID int64) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	return out
}

// ByCurrency retains exact currency matches. An empty currency is the
// identity. The comparison is case-sensitive on the stored uppercase
// form.
func ByCurrency(txs []core.Transaction, currency string) []core.Transaction {
	if currency == "" {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Currency == currency {
			out = append(out, t)
		}
	}
	return out
}

// ByMinAmount retains transactions with amount >= min. Nil is a no-op.
func ByMinAmount(txs []core.Transaction, min *decimal.Decimal) []core.Transaction {
	if min == nil {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Amount.GreaterThanOrEqual(*min) {
			out = append(out, t)
		}
	}
	return out
}

// ByFromDate retains transactions dated on or after from. Nil is a
// no-op. Comparison is by calendar date only.
func ByFromDate(txs []core.Transaction, from *core.Date) []core.Transaction {
	if from == nil {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date.OnOrAfter(*from) {
			out = append(out, t)
		}
	}
	return out
}

// Apply combines the owner filter with f in a single pass. The
// predicates touch disjoint fields, so composition order is irrelevant.
func Apply(txs []core.Transaction, ownerID int64, f Filters) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.UserID != ownerID {
			continue
		}
		if f.Currency != "" && t.Currency != f.Currency {
			continue
		}
		if f.MinAmount != nil && !t.Amount.GreaterThanOrEqual(*f.MinAmount) {
			continue
		}
		if f.FromDate != nil && !t.Date.OnOrAfter(*f.FromDate) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// DisplayRows maps already-filtered transactions to display rows.
func DisplayRows(txs []core.Transaction) []Row {
	rows := make([]Row, 0, len(txs))
	for _, t := range txs {
		note := t.Note
		if note == "" {
			note = "-"
		}
		rows = append(rows, Row{
			ID:       t.ID,
			Date:     t.Date.String(),
			Category: t.Category,
			Amount:   t.Amount,
			Currency: t.Currency,
			Note:     note,
		})
	}
	return rows
}

// UniqueCurrencies returns the distinct non-empty currencies in first
// seen order, for populating filter controls.
func UniqueCurrencies(txs []core.Transaction) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, t := range txs {
		if t.Currency == "" {
			continue
		}
		if _, ok := seen[t.Currency]; ok {
			continue
		}
		seen[t.Currency] = struct{}{}
		out = append(out, t.Currency)
	}
	return out
}
