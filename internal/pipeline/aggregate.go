package pipeline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"finboard/internal/core"
)

type (
	// PieSlice is one pie-chart entry: a (category, currency) group
	// total. IDs are assigned by insertion order within a single
	// derivation and are only meant for chart keying.
	PieSlice struct {
		ID    int
		Label string
		Value decimal.Decimal
	}

	// BarSeries is one category's totals aligned to the period axis,
	// with zero fill where the category had no transactions.
	BarSeries struct {
		Label string
		Data  []decimal.Decimal
	}

	// BarData is the time-series chart projection: the sorted period
	// axis, the categories encountered, and one dense series per
	// category.
	BarData struct {
		Periods    []string
		Categories []string
		Series     []BarSeries
	}
)

// ByCategoryAndCurrency sums amounts grouped by (category, currency)
// and labels each group "<category> (<currency>)". When min is set,
// group totals below min are excluded after aggregation; this is
// independent of the per-transaction minimum filter.
func ByCategoryAndCurrency(txs []core.Transaction, min *decimal.Decimal) []PieSlice {
	type key struct{ category, currency string }
	totals := map[key]decimal.Decimal{}
	var order []key
	for _, t := range txs {
		k := key{t.Category, t.Currency}
		if _, ok := totals[k]; !ok {
			order = append(order, k)
		}
		totals[k] = totals[k].Add(t.Amount)
	}

	slices := make([]PieSlice, 0, len(order))
	id := 0
	for _, k := range order {
		total := totals[k]
		if min != nil && total.LessThan(*min) {
			continue
		}
		slices = append(slices, PieSlice{
			ID:    id,
			Label: k.category + " (" + k.currency + ")",
			Value: total,
		})
		id++
	}
	return slices
}

// ByPeriodAndCategory buckets amounts by MM/YYYY period and category.
// Periods are sorted by parsed (year, month); a lexical sort on the
// period string would order years incorrectly.
func ByPeriodAndCategory(txs []core.Transaction) BarData {
	grouped := map[string]map[string]decimal.Decimal{}
	var categories []string
	seenCategory := map[string]struct{}{}
	for _, t := range txs {
		period := t.Date.Period()
		if grouped[period] == nil {
			grouped[period] = map[string]decimal.Decimal{}
		}
		grouped[period][t.Category] = grouped[period][t.Category].Add(t.Amount)
		if _, ok := seenCategory[t.Category]; !ok {
			seenCategory[t.Category] = struct{}{}
			categories = append(categories, t.Category)
		}
	}

	periods := make([]string, 0, len(grouped))
	for p := range grouped {
		periods = append(periods, p)
	}
	SortPeriods(periods)

	series := make([]BarSeries, 0, len(categories))
	for _, category := range categories {
		data := make([]decimal.Decimal, len(periods))
		for i, p := range periods {
			data[i] = grouped[p][category]
		}
		series = append(series, BarSeries{Label: category, Data: data})
	}

	return BarData{Periods: periods, Categories: categories, Series: series}
}

// SortPeriods orders MM/YYYY keys ascending by year, then month.
func SortPeriods(periods []string) {
	sort.SliceStable(periods, func(i, j int) bool {
		yi, mi := splitPeriod(periods[i])
		yj, mj := splitPeriod(periods[j])
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})
}

func splitPeriod(p string) (year, month int) {
	parts := strings.SplitN(p, "/", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	month, _ = strconv.Atoi(parts[0])
	year, _ = strconv.Atoi(parts[1])
	return year, month
}
