package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// field is a minimal single-line text input.
type field struct {
	label  string
	value  string
	secret bool
}

// handleKey consumes printable input and backspace, and reports
// whether it consumed the key.
func (f *field) handleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		f.value += string(msg.Runes)
		return true
	case tea.KeySpace:
		f.value += " "
		return true
	case tea.KeyBackspace:
		if f.value != "" {
			runes := []rune(f.value)
			f.value = string(runes[:len(runes)-1])
		}
		return true
	default:
		return false
	}
}

// view renders "Label: value" with an optional inline error, marking
// the focused field with a cursor.
func (f *field) view(focused bool, errText string) string {
	shown := f.value
	if f.secret {
		shown = strings.Repeat("*", len([]rune(f.value)))
	}
	cursor := " "
	if focused {
		cursor = "_"
	}
	line := labelStyle.Render(f.label+": ") + shown + cursor
	if focused {
		line = selectedStyle.Render("> ") + line
	} else {
		line = "  " + line
	}
	if errText != "" {
		line += "\n    " + errorStyle.Render(errText)
	}
	return line
}
