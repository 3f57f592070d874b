package core

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("01/03/2024")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2024 || int(d.Month()) != 3 || d.Day() != 1 {
		t.Fatalf("unexpected date %v", d)
	}
	if got := d.String(); got != "01/03/2024" {
		t.Fatalf("round trip mismatch: %s", got)
	}
	if got := d.Period(); got != "03/2024" {
		t.Fatalf("period mismatch: %s", got)
	}

	bads := []string{"", "2024-03-01", "32/01/2024", "01/13/2024", "abc"}
	for i, s := range bads {
		if _, err := ParseDate(s); err == nil {
			t.Fatalf("case %d expected error for %q", i, s)
		}
	}
}

func TestDateOnOrAfter(t *testing.T) {
	a := NewDate(2024, 3, 1)
	b := NewDate(2024, 2, 29)
	if !a.OnOrAfter(b) {
		t.Fatalf("expected %v >= %v", a, b)
	}
	if !a.OnOrAfter(a) {
		t.Fatalf("expected date on-or-after itself")
	}
	if b.OnOrAfter(a) {
		t.Fatalf("expected %v < %v", b, a)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2023, 12, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"05/12/2023"` {
		t.Fatalf("unexpected json: %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, d)
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:       "t-1",
		UserID:   1,
		Amount:   decimal.NewFromInt(100),
		Currency: EUR,
		Category: "Food",
		Date:     NewDate(2024, 3, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{ID: "", Currency: EUR, Category: "Food", Date: NewDate(2024, 3, 1)},
		{ID: "t", Currency: "eur", Category: "Food", Date: NewDate(2024, 3, 1)},
		{ID: "t", Currency: "GBP", Category: "Food", Date: NewDate(2024, 3, 1)},
		{ID: "t", Currency: EUR, Category: "", Date: NewDate(2024, 3, 1)},
		{ID: "t", Currency: EUR, Category: "Food"},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestValidCurrency(t *testing.T) {
	for _, c := range Currencies {
		if !ValidCurrency(c) {
			t.Fatalf("%s should be valid", c)
		}
	}
	if ValidCurrency("eur") || ValidCurrency("") || ValidCurrency("GBP") {
		t.Fatalf("unexpected currency accepted")
	}
}
