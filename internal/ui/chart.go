package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"finboard/internal/core"
	"finboard/internal/pipeline"
)

const (
	pieBarWidth = 24
	barMaxWidth = 40
)

// pieShares returns each slice's fraction of the total, in slice
// order. A zero total yields all zeros.
func pieShares(slices []pipeline.PieSlice) []float64 {
	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
	}
	shares := make([]float64, len(slices))
	if total.IsZero() {
		return shares
	}
	for i, s := range slices {
		shares[i] = s.Value.Div(total).InexactFloat64()
	}
	return shares
}

// scaleWidth maps value onto a bar of at most width cells against max.
// Any positive value renders at least one cell so small groups stay
// visible.
func scaleWidth(value, max decimal.Decimal, width int) int {
	if max.IsZero() || value.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	w := int(value.Div(max).InexactFloat64() * float64(width))
	if w < 1 {
		return 1
	}
	if w > width {
		return width
	}
	return w
}

func renderPie(slices []pipeline.PieSlice) string {
	if len(slices) == 0 {
		return disabledStyle.Render("No data for the current filters")
	}

	shares := pieShares(slices)
	labelWidth := 0
	for _, s := range slices {
		if len(s.Label) > labelWidth {
			labelWidth = len(s.Label)
		}
	}

	var b strings.Builder
	for i, s := range slices {
		if i > 0 {
			b.WriteString("\n")
		}
		cells := int(shares[i]*pieBarWidth + 0.5)
		if cells < 1 {
			cells = 1
		}
		bar := lipgloss.NewStyle().Foreground(seriesColor(i)).Render(strings.Repeat("█", cells))
		b.WriteString(fmt.Sprintf("%-*s %s %s (%.1f%%)",
			labelWidth, s.Label, bar, core.FormatAmount(s.Value), shares[i]*100))
	}
	return b.String()
}

func renderBar(data pipeline.BarData) string {
	if len(data.Periods) == 0 {
		return disabledStyle.Render("No data for the current filters")
	}

	// Stack segments per period; scale every bar against the largest
	// period total.
	totals := make([]decimal.Decimal, len(data.Periods))
	max := decimal.Zero
	for i := range data.Periods {
		for _, s := range data.Series {
			totals[i] = totals[i].Add(s.Data[i])
		}
		if totals[i].GreaterThan(max) {
			max = totals[i]
		}
	}

	var b strings.Builder
	for i, period := range data.Periods {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(period)
		b.WriteString(" ")
		for j, s := range data.Series {
			cells := scaleWidth(s.Data[i], max, barMaxWidth)
			if cells == 0 {
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(seriesColor(j)).Render(strings.Repeat("▇", cells)))
		}
		b.WriteString(" ")
		b.WriteString(core.FormatAmount(totals[i]))
	}

	b.WriteString("\n")
	for j, category := range data.Categories {
		if j > 0 {
			b.WriteString("   ")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(seriesColor(j)).Render("■"))
		b.WriteString(" ")
		b.WriteString(category)
	}
	return b.String()
}
