package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12.34", "12.34", true},
		{"12,34", "12.34", true},
		{" 100 ", "100", true},
		{"-5.5", "-5.5", true},
		{"0", "0", true},
		{"", "", false},
		{"   ", "", false},
		{"abc", "", false},
		{"12.3.4", "", false},
	}
	for i, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("case %d (%q): unexpected error %v", i, tc.in, err)
			}
			want, _ := decimal.NewFromString(tc.want)
			if !got.Equal(want) {
				t.Fatalf("case %d (%q): got %s want %s", i, tc.in, got, want)
			}
			continue
		}
		if err == nil {
			t.Fatalf("case %d (%q): expected error", i, tc.in)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(decimal.NewFromFloat(12.5)); got != "12.50" {
		t.Fatalf("got %s", got)
	}
	if got := FormatAmount(decimal.NewFromInt(-3)); got != "-3.00" {
		t.Fatalf("got %s", got)
	}
}
