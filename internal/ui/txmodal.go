package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"finboard/internal/core"
	"finboard/internal/forms"
)

const (
	txFocusAmount = iota
	txFocusDate
	txFocusCurrency
	txFocusCategory
	txFocusNote
	txFocusSubmit
	txFocusCount
)

// txModal renders a forms.TransactionForm. The amount and note fields
// are free text kept in sync with the form on every keystroke; the
// date text is parsed when the field loses focus, like the amount
// touch rule.
type txModal struct {
	form    *forms.TransactionForm
	amount  field
	date    field
	note    field
	focus   int
	dateErr string
}

func newTxModal(mode forms.Mode, seed *core.Transaction, opts ...forms.TransactionFormOption) *txModal {
	m := &txModal{form: forms.NewTransactionForm(mode, seed, opts...)}
	m.amount = field{label: "Amount", value: m.form.Amount}
	m.date = field{label: "Date (DD/MM/YYYY)", value: m.form.Date.String()}
	m.note = field{label: "Note", value: m.form.Note}
	return m
}

func (m *txModal) moveFocus(delta int) {
	m.blur()
	m.focus = (m.focus + delta + txFocusCount) % txFocusCount
}

// blur commits the field being left.
func (m *txModal) blur() {
	switch m.focus {
	case txFocusAmount:
		m.form.TouchAmount()
	case txFocusDate:
		m.commitDate()
	}
}

func (m *txModal) commitDate() bool {
	text := strings.TrimSpace(m.date.value)
	if text == "" {
		m.form.SetDate(core.Date{})
		m.dateErr = ""
		return true
	}
	d, err := core.ParseDate(text)
	if err != nil {
		m.dateErr = "Date must be DD/MM/YYYY"
		return false
	}
	m.form.SetDate(d)
	m.dateErr = ""
	return true
}

func (a *App) updateTxModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := a.txModal
	switch msg.Type {
	case tea.KeyEsc:
		m.form.Cancel()
		a.txModal = nil
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return a, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return a, nil
	case tea.KeyEnter:
		if m.focus == txFocusSubmit {
			a.submitTxModal()
		} else {
			m.moveFocus(1)
		}
		return a, nil
	case tea.KeyLeft, tea.KeyRight:
		if m.form.ReadOnly() {
			return a, nil
		}
		delta := 1
		if msg.Type == tea.KeyLeft {
			delta = -1
		}
		switch m.focus {
		case txFocusCurrency:
			m.form.SetCurrency(cycleChoice(core.Currencies, m.form.Currency, delta))
		case txFocusCategory:
			m.form.SetCategory(cycleChoice(core.Categories, m.form.Category, delta))
		}
		return a, nil
	}

	if m.form.ReadOnly() {
		return a, nil
	}
	switch m.focus {
	case txFocusAmount:
		if m.amount.handleKey(msg) {
			m.form.SetAmount(m.amount.value)
		}
	case txFocusDate:
		if m.date.handleKey(msg) {
			m.dateErr = ""
		}
	case txFocusNote:
		if m.note.handleKey(msg) {
			m.form.SetNote(m.note.value)
		}
	}
	return a, nil
}

func (a *App) submitTxModal() {
	m := a.txModal
	m.form.TouchAmount()
	if !m.commitDate() {
		return
	}
	if !m.form.CanSubmit() {
		a.status = "Fill in amount, currency and category first"
		return
	}
	owner, ok := a.session.Current()
	if !ok {
		return
	}
	tx, err := m.form.Submit(owner.ID)
	if err != nil {
		a.status = err.Error()
		return
	}

	verb := "created"
	if m.form.Mode() == forms.ModeEdit {
		verb = "updated"
		err = a.service.Update(a.ctx(), tx)
	} else {
		err = a.service.Create(a.ctx(), tx)
	}
	if err != nil {
		a.status = err.Error()
		return
	}
	a.txModal = nil
	a.status = "Transaction " + verb
	a.reloadTransactions()
}

// cycleChoice steps through options from the current value, wrapping
// at either end. An unknown or empty current lands on the first
// option.
func cycleChoice(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+delta+len(options))%len(options)]
		}
	}
	return options[0]
}

func (m *txModal) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.form.Mode().Title()))
	b.WriteString("\n\n")
	b.WriteString(m.amount.view(m.focus == txFocusAmount, m.form.AmountError()))
	b.WriteString("\n")
	b.WriteString(m.date.view(m.focus == txFocusDate, m.dateErr))
	b.WriteString("\n")
	b.WriteString(choiceLine("Currency", m.form.Currency, m.focus == txFocusCurrency))
	b.WriteString("\n")
	b.WriteString(choiceLine("Category", m.form.Category, m.focus == txFocusCategory))
	b.WriteString("\n")
	b.WriteString(m.note.view(m.focus == txFocusNote, ""))
	b.WriteString("\n\n")

	if m.form.ReadOnly() {
		b.WriteString(labelStyle.Render("esc close"))
	} else {
		button := "[ " + m.form.Mode().SubmitLabel() + " ]"
		if m.focus == txFocusSubmit {
			button = selectedStyle.Render(button)
		} else if !m.form.CanSubmit() {
			button = disabledStyle.Render(button)
		}
		b.WriteString(button)
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("tab next field   ←/→ pick value   enter submit   esc cancel"))
	}
	return modalStyle.Render(b.String())
}

func choiceLine(label, value string, focused bool) string {
	if value == "" {
		value = "-"
	}
	line := labelStyle.Render(label+": ") + value
	if focused {
		return selectedStyle.Render("> ") + line + labelStyle.Render("  ←/→")
	}
	return "  " + line
}
