package ui

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"finboard/internal/pipeline"
)

func TestPieShares(t *testing.T) {
	slices := []pipeline.PieSlice{
		{Label: "Food (EUR)", Value: decimal.NewFromInt(75)},
		{Label: "Transport (EUR)", Value: decimal.NewFromInt(25)},
	}
	shares := pieShares(slices)
	if math.Abs(shares[0]-0.75) > 1e-9 || math.Abs(shares[1]-0.25) > 1e-9 {
		t.Fatalf("unexpected shares: %v", shares)
	}

	sum := 0.0
	for _, s := range shares {
		sum += s
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("shares must sum to 1, got %f", sum)
	}
}

func TestPieSharesZeroTotal(t *testing.T) {
	slices := []pipeline.PieSlice{{Label: "Food (EUR)", Value: decimal.Zero}}
	if shares := pieShares(slices); shares[0] != 0 {
		t.Fatalf("zero total must yield zero shares, got %v", shares)
	}
}

func TestScaleWidth(t *testing.T) {
	max := decimal.NewFromInt(100)
	cases := []struct {
		name  string
		value decimal.Decimal
		want  int
	}{
		{"full", decimal.NewFromInt(100), 40},
		{"half", decimal.NewFromInt(50), 20},
		{"tiny stays visible", decimal.NewFromFloat(0.5), 1},
		{"zero", decimal.Zero, 0},
		{"negative", decimal.NewFromInt(-5), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scaleWidth(tc.value, max, 40); got != tc.want {
				t.Fatalf("scaleWidth(%s) = %d, want %d", tc.value, got, tc.want)
			}
		})
	}

	if got := scaleWidth(decimal.NewFromInt(10), decimal.Zero, 40); got != 0 {
		t.Fatalf("zero max must yield 0, got %d", got)
	}
}

func TestCycleChoice(t *testing.T) {
	opts := []string{"EUR", "USD", "RSD"}
	if got := cycleChoice(opts, "", 1); got != "EUR" {
		t.Fatalf("empty current should land on first option, got %s", got)
	}
	if got := cycleChoice(opts, "RSD", 1); got != "EUR" {
		t.Fatalf("forward wrap failed, got %s", got)
	}
	if got := cycleChoice(opts, "EUR", -1); got != "RSD" {
		t.Fatalf("backward wrap failed, got %s", got)
	}
}
