package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"finboard/internal/core"
	"finboard/internal/pipeline"
	"finboard/internal/store"
	"finboard/internal/store/memory"
)

func tx(id string, userID int64, amount float64, currency, category, date string) core.Transaction {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return core.Transaction{
		ID:       id,
		UserID:   userID,
		Amount:   decimal.NewFromFloat(amount),
		Currency: currency,
		Category: category,
		Date:     d,
	}
}

func newService() *TransactionService {
	st := memory.New([]core.Transaction{
		tx("1", 1, 100, core.EUR, "Food", "01/03/2024"),
		tx("2", 1, 50, core.USD, "Food", "01/03/2024"),
		tx("3", 1, 20, core.EUR, "Transport", "10/01/2024"),
		tx("4", 2, 75, core.EUR, "Housing", "15/02/2024"),
	})
	return NewTransactionService(st, nil)
}

func TestRowsPagination(t *testing.T) {
	ctx := context.Background()
	s := newService()

	rows, total, err := s.Rows(ctx, 1, pipeline.Filters{}, 0, 2)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if total != 3 || len(rows) != 2 {
		t.Fatalf("total=%d len=%d", total, len(rows))
	}
	if rows[0].ID != "1" || rows[1].ID != "2" {
		t.Fatalf("unexpected page: %+v", rows)
	}

	rows, _, err = s.Rows(ctx, 1, pipeline.Filters{}, 1, 2)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "3" {
		t.Fatalf("unexpected second page: %+v", rows)
	}

	// Past the end: empty page, same total.
	rows, total, err = s.Rows(ctx, 1, pipeline.Filters{}, 5, 2)
	if err != nil || len(rows) != 0 || total != 3 {
		t.Fatalf("rows=%v total=%d err=%v", rows, total, err)
	}
}

func TestRowsFiltered(t *testing.T) {
	ctx := context.Background()
	s := newService()
	rows, total, err := s.Rows(ctx, 1, pipeline.Filters{Currency: core.EUR}, 0, 10)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if total != 2 || rows[0].ID != "1" || rows[1].ID != "3" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestDashboardScenario(t *testing.T) {
	ctx := context.Background()
	s := newService()

	d, err := s.Dashboard(ctx, 1, pipeline.Filters{Currency: core.EUR})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(d.Pie) != 2 {
		t.Fatalf("expected 2 pie slices, got %v", d.Pie)
	}
	if d.Pie[0].Label != "Food (EUR)" || !d.Pie[0].Value.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected first slice: %+v", d.Pie[0])
	}
	if want := []string{"01/2024", "03/2024"}; len(d.Bar.Periods) != 2 || d.Bar.Periods[0] != want[0] || d.Bar.Periods[1] != want[1] {
		t.Fatalf("unexpected periods: %v", d.Bar.Periods)
	}
}

func TestDashboardMinAmountPostAggregation(t *testing.T) {
	ctx := context.Background()
	s := newService()
	min := decimal.NewFromInt(60)

	d, err := s.Dashboard(ctx, 1, pipeline.Filters{Currency: core.EUR, MinAmount: &min})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	// Pie drops the Transport (EUR) total of 20 after aggregation.
	if len(d.Pie) != 1 || d.Pie[0].Label != "Food (EUR)" {
		t.Fatalf("unexpected pie: %v", d.Pie)
	}
	// Bar filters per transaction, so only the 100 EUR Food row remains.
	if len(d.Bar.Categories) != 1 || d.Bar.Categories[0] != "Food" {
		t.Fatalf("unexpected bar categories: %v", d.Bar.Categories)
	}
}

func TestMutationsInvalidateDashboard(t *testing.T) {
	ctx := context.Background()
	s := newService()

	d1, err := s.Dashboard(ctx, 1, pipeline.Filters{})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if err := s.Create(ctx, tx("5", 1, 40, core.EUR, "Food", "02/03/2024")); err != nil {
		t.Fatalf("create: %v", err)
	}

	d2, err := s.Dashboard(ctx, 1, pipeline.Filters{})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	sum := func(d Dashboard) decimal.Decimal {
		total := decimal.Zero
		for _, p := range d.Pie {
			total = total.Add(p.Value)
		}
		return total
	}
	if !sum(d2).Equal(sum(d1).Add(decimal.NewFromInt(40))) {
		t.Fatalf("dashboard not recomputed after mutation: %s vs %s", sum(d1), sum(d2))
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newService()

	edited := tx("1", 1, 5, core.EUR, "Other", "01/03/2024")
	if err := s.Update(ctx, edited); err != nil {
		t.Fatalf("update: %v", err)
	}
	rows, _, _ := s.Rows(ctx, 1, pipeline.Filters{}, 0, 10)
	if rows[0].Category != "Other" {
		t.Fatalf("update not visible: %+v", rows[0])
	}

	if err := s.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, total, _ := s.Rows(ctx, 1, pipeline.Filters{}, 0, 10)
	if total != 2 {
		t.Fatalf("delete not visible, total=%d", total)
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	s := newService()

	got, err := s.Get(ctx, "2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Currency != core.USD || !got.Amount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected transaction: %+v", got)
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCurrencies(t *testing.T) {
	ctx := context.Background()
	s := newService()
	got, err := s.Currencies(ctx)
	if err != nil {
		t.Fatalf("currencies: %v", err)
	}
	if len(got) != 2 || got[0] != core.EUR || got[1] != core.USD {
		t.Fatalf("got %v", got)
	}
}
