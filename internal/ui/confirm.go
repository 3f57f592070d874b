package ui

import tea "github.com/charmbracelet/bubbletea"

// confirmDialog asks a yes/no question before a destructive action.
type confirmDialog struct {
	title  string
	action func(*App)
}

func (a *App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		action := a.confirm.action
		a.confirm = nil
		action(a)
	case "n", "esc":
		a.confirm = nil
	}
	return a, nil
}

func (c *confirmDialog) view() string {
	return modalStyle.Render(
		titleStyle.Render(c.title) + "\n\n" + labelStyle.Render("[y] yes   [n] no"),
	)
}
