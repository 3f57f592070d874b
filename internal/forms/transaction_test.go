package forms

import (
	"testing"

	"github.com/shopspring/decimal"

	"finboard/internal/core"
)

func fixedToday() core.Date { return core.NewDate(2024, 3, 15) }

func seedTx() *core.Transaction {
	return &core.Transaction{
		ID:       "t-1",
		UserID:   7,
		Amount:   decimal.NewFromFloat(12.5),
		Currency: core.EUR,
		Category: "Food",
		Date:     core.NewDate(2024, 3, 1),
		Note:     "lunch",
	}
}

func TestCreateModeResetsFields(t *testing.T) {
	f := NewTransactionForm(ModeCreate, nil, WithToday(fixedToday))
	if f.Amount != "" || f.Currency != "" || f.Category != "" || f.Note != "" {
		t.Fatalf("fields should start empty: %+v", f)
	}
	if f.Date.String() != "15/03/2024" {
		t.Fatalf("date should default to today, got %q", f.Date)
	}
}

func TestCreateModeEmptyDatePolicy(t *testing.T) {
	f := NewTransactionForm(ModeCreate, nil, WithToday(fixedToday), WithEmptyDefaultDate())
	if !f.Date.IsZero() {
		t.Fatalf("date should start unset, got %q", f.Date)
	}
	// An unpicked date still commits as today.
	f.SetAmount("10")
	f.SetCurrency("eur")
	f.SetCategory("Food")
	tx, err := f.Submit(1)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if tx.Date.String() != "15/03/2024" {
		t.Fatalf("zero date should commit as today, got %q", tx.Date)
	}
}

func TestEditModePopulatesFromSeed(t *testing.T) {
	seed := seedTx()
	f := NewTransactionForm(ModeEdit, seed, WithToday(fixedToday))
	if f.Amount != "12.5" || f.Currency != core.EUR || f.Category != "Food" || f.Note != "lunch" {
		t.Fatalf("seed not applied: %+v", f)
	}
	if f.Date.String() != "01/03/2024" {
		t.Fatalf("seed date not applied: %q", f.Date)
	}
}

func TestAmountRequiredAfterTouch(t *testing.T) {
	f := NewTransactionForm(ModeCreate, nil, WithToday(fixedToday))
	if f.AmountError() != "" {
		t.Fatalf("untouched field must not show an error")
	}
	f.SetAmount("42")
	f.TouchAmount()
	f.SetAmount("")
	if got := f.AmountError(); got != "Amount is required" {
		t.Fatalf("got %q", got)
	}
	// Filling currency and category alone keeps submit disabled.
	f.SetCurrency(core.EUR)
	f.SetCategory("Food")
	if f.CanSubmit() {
		t.Fatalf("empty amount must keep submit disabled")
	}
}

func TestNonNumericAmountRejected(t *testing.T) {
	f := NewTransactionForm(ModeCreate, nil, WithToday(fixedToday))
	f.SetAmount("twelve")
	f.TouchAmount()
	if got := f.AmountError(); got != "Amount must be a number" {
		t.Fatalf("got %q", got)
	}
	f.SetCurrency(core.EUR)
	f.SetCategory("Food")
	if f.CanSubmit() {
		t.Fatalf("non-numeric amount must keep submit disabled")
	}
}

func TestSubmitCreate(t *testing.T) {
	f := NewTransactionForm(ModeCreate, nil, WithToday(fixedToday))
	f.SetAmount("12,34")
	f.SetCurrency("eur")
	f.SetCategory("Food")
	f.SetNote("coffee")
	if !f.CanSubmit() {
		t.Fatalf("form should be submittable")
	}
	tx, err := f.Submit(7)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if tx.ID == "" {
		t.Fatalf("create must assign a fresh id")
	}
	if tx.UserID != 7 {
		t.Fatalf("owner = %d, want 7", tx.UserID)
	}
	if tx.Currency != core.EUR {
		t.Fatalf("currency must be uppercased, got %q", tx.Currency)
	}
	if !tx.Amount.Equal(decimal.NewFromFloat(12.34)) {
		t.Fatalf("amount = %s", tx.Amount)
	}
	if tx.Note != "coffee" || tx.Date.String() != "15/03/2024" {
		t.Fatalf("unexpected transaction %+v", tx)
	}
	// Submit resets the form.
	if f.Amount != "" || f.Currency != "" || f.Category != "" || f.Note != "" {
		t.Fatalf("form should reset after submit: %+v", f)
	}
}

func TestSubmitEditKeepsIdentity(t *testing.T) {
	seed := seedTx()
	f := NewTransactionForm(ModeEdit, seed, WithToday(fixedToday))
	f.SetAmount("99")
	f.SetCategory("Transport")
	tx, err := f.Submit(123)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if tx.ID != seed.ID || tx.UserID != seed.UserID {
		t.Fatalf("edit must keep id and owner: %+v", tx)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(99)) || tx.Category != "Transport" {
		t.Fatalf("edited fields not applied: %+v", tx)
	}
}

func TestPreviewModeIsReadOnly(t *testing.T) {
	seed := seedTx()
	f := NewTransactionForm(ModePreview, seed, WithToday(fixedToday))
	if !f.ReadOnly() {
		t.Fatalf("preview must be read only")
	}
	f.SetAmount("999")
	if f.Amount != "12.5" {
		t.Fatalf("preview fields must be disabled, got %q", f.Amount)
	}
	if f.CanSubmit() {
		t.Fatalf("preview must not offer submit")
	}
	if _, err := f.Submit(1); err != ErrReadOnly {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	if f.Mode().SubmitLabel() != "" {
		t.Fatalf("preview has no submit label")
	}
}

func TestCancelDiscardsEdits(t *testing.T) {
	seed := seedTx()
	f := NewTransactionForm(ModeEdit, seed, WithToday(fixedToday))
	f.SetAmount("999")
	f.SetNote("changed")
	f.Cancel()
	if f.Amount != "12.5" || f.Note != "lunch" {
		t.Fatalf("cancel should re-seed fields: %+v", f)
	}
}
