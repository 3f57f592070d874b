package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"finboard/internal/core"
	"finboard/internal/pipeline"
	"finboard/internal/services"
)

// dashboardModel is the charts screen. The minimum-amount filter only
// applies inside a single currency, so it unlocks once a currency is
// picked and clears when the currency filter goes back to all.
type dashboardModel struct {
	currencies  []string
	currencyIdx int // -1 means all currencies
	min         *decimal.Decimal
	minField    field
	enteringMin bool

	data services.Dashboard
}

func newDashboardModel() dashboardModel {
	return dashboardModel{
		currencyIdx: -1,
		minField:    field{label: "Min amount"},
	}
}

func (m *dashboardModel) filters() pipeline.Filters {
	f := pipeline.Filters{MinAmount: m.min}
	if m.currencyIdx >= 0 && m.currencyIdx < len(m.currencies) {
		f.Currency = m.currencies[m.currencyIdx]
	}
	return f
}

func (m *dashboardModel) currencyLabel() string {
	if m.currencyIdx < 0 || m.currencyIdx >= len(m.currencies) {
		return "ALL"
	}
	return m.currencies[m.currencyIdx]
}

func (a *App) reloadDashboard() {
	owner, ok := a.session.Current()
	if !ok {
		return
	}
	m := &a.dashboard

	currencies, err := a.service.Currencies(a.ctx())
	if err != nil {
		a.status = err.Error()
		return
	}
	m.currencies = currencies
	if m.currencyIdx >= len(currencies) {
		m.currencyIdx = -1
		m.min = nil
	}

	data, err := a.service.Dashboard(a.ctx(), owner.ID, m.filters())
	if err != nil {
		a.status = err.Error()
		return
	}
	m.data = data
}

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := &a.dashboard

	if m.enteringMin {
		switch msg.Type {
		case tea.KeyEnter:
			text := strings.TrimSpace(m.minField.value)
			if text == "" {
				m.min = nil
			} else {
				v, err := core.ParseAmount(text)
				if err != nil {
					a.status = "Invalid amount"
					return a, nil
				}
				m.min = &v
			}
			m.enteringMin = false
			a.reloadDashboard()
		case tea.KeyEsc:
			m.enteringMin = false
		default:
			m.minField.handleKey(msg)
		}
		return a, nil
	}

	if handled, cmd := a.handleGlobalKey(msg); handled {
		return a, cmd
	}

	switch msg.String() {
	case "c":
		m.currencyIdx++
		if m.currencyIdx >= len(m.currencies) {
			m.currencyIdx = -1
			m.min = nil
			m.minField.value = ""
		}
		a.reloadDashboard()
	case "m":
		if m.currencyIdx < 0 {
			a.status = "Pick a currency before setting a minimum"
			return a, nil
		}
		m.minField.value = ""
		if m.min != nil {
			m.minField.value = m.min.String()
		}
		m.enteringMin = true
	case "x":
		m.currencyIdx = -1
		m.min = nil
		m.minField.value = ""
		a.reloadDashboard()
	}
	return a, nil
}

func (a *App) viewDashboard() string {
	m := &a.dashboard

	minLabel := "-"
	if m.min != nil {
		minLabel = m.min.String()
	}
	minHint := "[m] min amount"
	if m.currencyIdx < 0 {
		minHint = disabledStyle.Render("[m] min amount")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Currency: %s   Min: %s", m.currencyLabel(), minLabel)))
	b.WriteString("\n")
	if m.enteringMin {
		b.WriteString(m.minField.view(true, ""))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Spending by category"))
	b.WriteString("\n")
	b.WriteString(renderPie(m.data.Pie))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("Spending per month"))
	b.WriteString("\n")
	b.WriteString(renderBar(m.data.Bar))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("[c] currency   " + minHint + "   [x] clear"))
	return b.String()
}
