package pipeline

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"finboard/internal/core"
)

func TestByCategoryAndCurrency(t *testing.T) {
	txs := []core.Transaction{
		tx("1", 1, 100, core.EUR, "Food", "01/03/2024", ""),
		tx("2", 1, 50, core.USD, "Food", "01/03/2024", ""),
		tx("3", 1, 25, core.EUR, "Food", "05/03/2024", ""),
		tx("4", 1, 10, core.EUR, "Transport", "05/03/2024", ""),
	}

	slices := ByCategoryAndCurrency(txs, nil)
	if len(slices) != 3 {
		t.Fatalf("expected 3 slices, got %d: %v", len(slices), slices)
	}
	labels := []string{slices[0].Label, slices[1].Label, slices[2].Label}
	want := []string{"Food (EUR)", "Food (USD)", "Transport (EUR)"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("labels %v want %v", labels, want)
	}
	if !slices[0].Value.Equal(decimal.NewFromInt(125)) {
		t.Fatalf("Food (EUR) = %s, want 125", slices[0].Value)
	}
	for i, s := range slices {
		if s.ID != i {
			t.Fatalf("ids must follow insertion order, got %d at %d", s.ID, i)
		}
	}
}

func TestByCategoryAndCurrencyMinThreshold(t *testing.T) {
	txs := []core.Transaction{
		tx("1", 1, 100, core.EUR, "Food", "01/03/2024", ""),
		tx("2", 1, 10, core.EUR, "Transport", "01/03/2024", ""),
	}
	min := decimal.NewFromInt(50)
	slices := ByCategoryAndCurrency(txs, &min)
	if len(slices) != 1 || slices[0].Label != "Food (EUR)" {
		t.Fatalf("group totals below min must be dropped: %v", slices)
	}
	// IDs stay dense after the threshold drop.
	if slices[0].ID != 0 {
		t.Fatalf("expected id 0, got %d", slices[0].ID)
	}
}

func TestPieScenarioFromCurrencyFilter(t *testing.T) {
	txs := []core.Transaction{
		tx("1", 1, 100, core.EUR, "Food", "01/03/2024", ""),
		tx("2", 1, 50, core.USD, "Food", "01/03/2024", ""),
	}
	filtered := Apply(txs, 1, Filters{Currency: core.EUR})
	if len(filtered) != 1 || filtered[0].ID != "1" {
		t.Fatalf("expected only id 1, got %v", ids(filtered))
	}
	slices := ByCategoryAndCurrency(filtered, nil)
	if len(slices) != 1 {
		t.Fatalf("expected one slice, got %v", slices)
	}
	if slices[0].Label != "Food (EUR)" || !slices[0].Value.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("got %+v", slices[0])
	}
}

func TestByPeriodAndCategory(t *testing.T) {
	txs := []core.Transaction{
		tx("1", 1, 100, core.EUR, "Food", "01/01/2024", ""),
		tx("2", 1, 40, core.EUR, "Food", "15/12/2023", ""),
		tx("3", 1, 60, core.EUR, "Transport", "20/02/2024", ""),
		tx("4", 1, 10, core.EUR, "Food", "25/02/2024", ""),
	}
	bar := ByPeriodAndCategory(txs)

	wantPeriods := []string{"12/2023", "01/2024", "02/2024"}
	if !reflect.DeepEqual(bar.Periods, wantPeriods) {
		t.Fatalf("periods %v want %v", bar.Periods, wantPeriods)
	}
	if want := []string{"Food", "Transport"}; !reflect.DeepEqual(bar.Categories, want) {
		t.Fatalf("categories %v want %v", bar.Categories, want)
	}

	// Every series is dense over the period axis, zero-filled.
	for _, s := range bar.Series {
		if len(s.Data) != len(bar.Periods) {
			t.Fatalf("series %s has length %d, want %d", s.Label, len(s.Data), len(bar.Periods))
		}
	}

	food := bar.Series[0]
	wantFood := []string{"40", "100", "10"}
	for i, v := range food.Data {
		if v.String() != wantFood[i] {
			t.Fatalf("food[%d] = %s want %s", i, v, wantFood[i])
		}
	}
	transport := bar.Series[1]
	if !transport.Data[0].IsZero() || !transport.Data[1].IsZero() {
		t.Fatalf("transport should zero-fill missing periods: %v", transport.Data)
	}

	// Series sum equals the category's total across all transactions.
	total := decimal.Zero
	for _, v := range food.Data {
		total = total.Add(v)
	}
	if !total.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("food total %s want 150", total)
	}
}

func TestSortPeriodsCrossesYears(t *testing.T) {
	periods := []string{"01/2024", "12/2023", "02/2024"}
	SortPeriods(periods)
	if want := []string{"12/2023", "01/2024", "02/2024"}; !reflect.DeepEqual(periods, want) {
		t.Fatalf("got %v want %v", periods, want)
	}
}
