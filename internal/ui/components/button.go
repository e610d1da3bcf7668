package components

import (
	"strings"

	"github.com/abhisek/academy/internal/ui/theme"
)

// Button is a keyboard-triggered toolbar button.
type Button struct {
	Key    string
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(key, label string, active bool) Button {
	return Button{Key: key, Label: label, Active: active}
}

// View renders the button.
func (b Button) View() string {
	label := b.Key + " " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// Toolbar renders buttons side by side.
func Toolbar(buttons ...Button) string {
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		parts[i] = b.View()
	}
	return strings.Join(parts, " ")
}
