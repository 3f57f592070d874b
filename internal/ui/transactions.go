package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"finboard/internal/config"
	"finboard/internal/core"
	"finboard/internal/forms"
	"finboard/internal/pipeline"
)

// transactionsModel is the table screen: one page of the current
// user's rows plus the currency and from-date filters.
type transactionsModel struct {
	currencies   []string
	currencyIdx  int // -1 means all currencies
	fromDate     *core.Date
	dateField    field
	enteringDate bool

	pageSize int
	page     int
	cursor   int
	rows     []pipeline.Row
	total    int
}

func newTransactionsModel(pageSize int) transactionsModel {
	return transactionsModel{
		currencyIdx: -1,
		pageSize:    pageSize,
		dateField:   field{label: "From date (DD/MM/YYYY)"},
	}
}

func (m *transactionsModel) filters() pipeline.Filters {
	f := pipeline.Filters{FromDate: m.fromDate}
	if m.currencyIdx >= 0 && m.currencyIdx < len(m.currencies) {
		f.Currency = m.currencies[m.currencyIdx]
	}
	return f
}

func (m *transactionsModel) currencyLabel() string {
	if m.currencyIdx < 0 || m.currencyIdx >= len(m.currencies) {
		return "ALL"
	}
	return m.currencies[m.currencyIdx]
}

// reloadTransactions refreshes the visible page. When a delete empties
// the current page it steps back to the last page that still has rows.
func (a *App) reloadTransactions() {
	owner, ok := a.session.Current()
	if !ok {
		return
	}
	m := &a.transactions

	currencies, err := a.service.Currencies(a.ctx())
	if err != nil {
		a.status = err.Error()
		return
	}
	m.currencies = currencies
	if m.currencyIdx >= len(currencies) {
		m.currencyIdx = -1
	}

	rows, total, err := a.service.Rows(a.ctx(), owner.ID, m.filters(), m.page, m.pageSize)
	if err != nil {
		a.status = err.Error()
		return
	}
	if len(rows) == 0 && total > 0 && m.page > 0 {
		m.page = (total - 1) / m.pageSize
		rows, total, err = a.service.Rows(a.ctx(), owner.ID, m.filters(), m.page, m.pageSize)
		if err != nil {
			a.status = err.Error()
			return
		}
	}
	m.rows, m.total = rows, total
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (a *App) updateTransactions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := &a.transactions

	if m.enteringDate {
		switch msg.Type {
		case tea.KeyEnter:
			text := strings.TrimSpace(m.dateField.value)
			if text == "" {
				m.fromDate = nil
			} else {
				d, err := core.ParseDate(text)
				if err != nil {
					a.status = "Invalid date, use DD/MM/YYYY"
					return a, nil
				}
				m.fromDate = &d
			}
			m.enteringDate = false
			m.page, m.cursor = 0, 0
			a.reloadTransactions()
		case tea.KeyEsc:
			m.enteringDate = false
		default:
			m.dateField.handleKey(msg)
		}
		return a, nil
	}

	if handled, cmd := a.handleGlobalKey(msg); handled {
		return a, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "left", "h":
		if m.page > 0 {
			m.page--
			m.cursor = 0
			a.reloadTransactions()
		}
	case "right", "l":
		if (m.page+1)*m.pageSize < m.total {
			m.page++
			m.cursor = 0
			a.reloadTransactions()
		}
	case "s":
		m.pageSize = nextPageSize(m.pageSize)
		m.page, m.cursor = 0, 0
		a.reloadTransactions()
	case "c":
		m.currencyIdx++
		if m.currencyIdx >= len(m.currencies) {
			m.currencyIdx = -1
		}
		m.page, m.cursor = 0, 0
		a.reloadTransactions()
	case "f":
		m.dateField.value = ""
		if m.fromDate != nil {
			m.dateField.value = m.fromDate.String()
		}
		m.enteringDate = true
	case "x":
		m.currencyIdx = -1
		m.fromDate = nil
		m.dateField.value = ""
		m.page, m.cursor = 0, 0
		a.reloadTransactions()
	case "n":
		a.openTxModal(forms.ModeCreate, nil)
	case "e":
		if t, ok := a.selectedTransaction(); ok {
			a.openTxModal(forms.ModeEdit, &t)
		}
	case "v":
		if t, ok := a.selectedTransaction(); ok {
			a.openTxModal(forms.ModePreview, &t)
		}
	case "d":
		if t, ok := a.selectedTransaction(); ok {
			id := t.ID
			a.confirm = &confirmDialog{
				title: "Delete this transaction?",
				action: func(a *App) {
					if err := a.service.Delete(a.ctx(), id); err != nil {
						a.status = err.Error()
						return
					}
					a.status = "Transaction deleted"
					a.reloadTransactions()
				},
			}
		}
	}
	return a, nil
}

func (a *App) openTxModal(mode forms.Mode, seed *core.Transaction) {
	var opts []forms.TransactionFormOption
	if a.cfg.DefaultDate == config.DefaultDateEmpty {
		opts = append(opts, forms.WithEmptyDefaultDate())
	}
	a.txModal = newTxModal(mode, seed, opts...)
}

func (a *App) selectedTransaction() (core.Transaction, bool) {
	m := &a.transactions
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return core.Transaction{}, false
	}
	t, err := a.service.Get(a.ctx(), m.rows[m.cursor].ID)
	if err != nil {
		a.status = err.Error()
		return core.Transaction{}, false
	}
	return t, true
}

func nextPageSize(current int) int {
	for i, n := range config.PageSizes {
		if n == current {
			return config.PageSizes[(i+1)%len(config.PageSizes)]
		}
	}
	return config.PageSizes[0]
}

func (a *App) viewTransactions() string {
	m := &a.transactions

	var b strings.Builder
	b.WriteString(titleStyle.Render("Transactions"))
	b.WriteString("\n\n")

	from := "-"
	if m.fromDate != nil {
		from = m.fromDate.String()
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("Currency: %s   From: %s", m.currencyLabel(), from)))
	b.WriteString("\n")
	if m.enteringDate {
		b.WriteString(m.dateField.view(true, ""))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("  %-12s %-14s %12s  %-4s  %s", "Date", "Category", "Amount", "Cur", "Note")))
	b.WriteString("\n")
	if len(m.rows) == 0 {
		b.WriteString(disabledStyle.Render("  No transactions match the current filters"))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		line := fmt.Sprintf("%-12s %-14s %12s  %-4s  %s",
			row.Date, row.Category, core.FormatAmount(row.Amount), row.Currency, row.Note)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	totalPages := 1
	if m.pageSize > 0 && m.total > 0 {
		totalPages = (m.total + m.pageSize - 1) / m.pageSize
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("page %d/%d   %d rows   %d per page", m.page+1, totalPages, m.total, m.pageSize)))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("↑/↓ row   ←/→ page   [s] page size   [c] currency   [f] from date   [x] clear"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("[n] new   [e] edit   [v] preview   [d] delete"))
	return b.String()
}
