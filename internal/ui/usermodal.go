package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"finboard/internal/core"
	"finboard/internal/forms"
)

const userFocusButton = 4

// userModal renders a forms.UserForm: read-only until editing starts,
// locked again after save or cancel.
type userModal struct {
	form   *forms.UserForm
	fields [4]field // name, email, username, password
	focus  int
}

func newUserModal(u core.User) *userModal {
	m := &userModal{form: forms.NewUserForm(u)}
	m.fields[0].label = "Name"
	m.fields[1].label = "Email"
	m.fields[2].label = "Username"
	m.fields[3].label = "Password"
	m.fields[3].secret = true
	m.sync()
	return m
}

// sync copies the form values back into the text fields after a
// cancel or save reseeds them.
func (m *userModal) sync() {
	m.fields[0].value = m.form.Name
	m.fields[1].value = m.form.Email
	m.fields[2].value = m.form.Username
	m.fields[3].value = m.form.Password
}

func (a *App) updateUserModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := a.userModal
	switch msg.Type {
	case tea.KeyEsc:
		if m.form.Editing() {
			m.form.Cancel()
			m.sync()
		} else {
			a.userModal = nil
		}
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		m.focus = (m.focus + 1) % (userFocusButton + 1)
		return a, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focus = (m.focus + userFocusButton) % (userFocusButton + 1)
		return a, nil
	case tea.KeyEnter:
		if !m.form.Editing() {
			m.form.StartEdit()
			m.focus = 0
			return a, nil
		}
		if m.focus != userFocusButton {
			m.focus++
			return a, nil
		}
		u, err := m.form.Save()
		if errors.Is(err, forms.ErrIncomplete) {
			a.status = "Fix the highlighted fields first"
			return a, nil
		}
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		if err := a.session.SaveProfile(u); err != nil {
			a.status = err.Error()
			return a, nil
		}
		m.sync()
		a.status = "Profile saved"
		return a, nil
	}

	if !m.form.Editing() || m.focus == userFocusButton {
		return a, nil
	}
	if m.fields[m.focus].handleKey(msg) {
		switch m.focus {
		case 0:
			m.form.Name = m.fields[0].value
		case 1:
			m.form.Email = m.fields[1].value
		case 2:
			m.form.Username = m.fields[2].value
		case 3:
			m.form.Password = m.fields[3].value
		}
	}
	return a, nil
}

func (m *userModal) view() string {
	errs := [4]string{
		m.form.NameError(),
		m.form.EmailError(),
		m.form.UsernameError(),
		m.form.PasswordError(),
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Account settings"))
	b.WriteString("\n\n")
	for i := range m.fields {
		b.WriteString(m.fields[i].view(m.focus == i && m.form.Editing(), errs[i]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if !m.form.Editing() {
		b.WriteString("[ Edit ]")
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("enter edit   esc close"))
	} else {
		button := "[ Save ]"
		if m.focus == userFocusButton {
			button = selectedStyle.Render(button)
		} else if !m.form.CanSave() {
			button = disabledStyle.Render(button)
		}
		b.WriteString(button)
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("tab next field   enter save   esc discard"))
	}
	return modalStyle.Render(b.String())
}
