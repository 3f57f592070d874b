package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"finboard/internal/session"
)

type loginModel struct {
	fields      [2]field
	focus       int
	usernameErr bool
	passwordErr bool
}

func newLoginModel() loginModel {
	return loginModel{
		fields: [2]field{
			{label: "Username"},
			{label: "Password", secret: true},
		},
	}
}

func (a *App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := &a.login
	switch msg.Type {
	case tea.KeyEsc:
		return a, tea.Quit
	case tea.KeyTab, tea.KeyDown, tea.KeyShiftTab, tea.KeyUp:
		m.focus = (m.focus + 1) % len(m.fields)
		return a, nil
	case tea.KeyEnter:
		m.usernameErr, m.passwordErr = false, false
		_, err := a.session.Login(m.fields[0].value, m.fields[1].value)
		switch {
		case errors.Is(err, session.ErrUnknownUsername):
			m.usernameErr = true
		case errors.Is(err, session.ErrWrongPassword):
			m.passwordErr = true
		case err == nil:
			a.screen = screenTransactions
			a.transactions = newTransactionsModel(a.cfg.PageSize)
			a.reloadTransactions()
		}
		return a, nil
	}
	m.fields[m.focus].handleKey(msg)
	return a, nil
}

func (a *App) viewLogin() string {
	m := &a.login
	usernameErr := ""
	if m.usernameErr {
		usernameErr = "Invalid username"
	}
	passwordErr := ""
	if m.passwordErr {
		passwordErr = "Invalid password"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in"))
	b.WriteString("\n\n")
	b.WriteString(m.fields[0].view(m.focus == 0, usernameErr))
	b.WriteString("\n")
	b.WriteString(m.fields[1].view(m.focus == 1, passwordErr))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("enter sign in   tab next field   esc quit"))
	return b.String()
}
