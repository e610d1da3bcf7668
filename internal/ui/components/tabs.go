package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/ui/theme"
)

// Tabs is a horizontal single-choice selector.
type Tabs struct {
	Options  []string
	Selected int
}

// NewTabs creates tabs with the first option selected.
func NewTabs(options []string) Tabs {
	return Tabs{Options: options}
}

// Current returns the selected option, or "" when there are none.
func (t Tabs) Current() string {
	if t.Selected < 0 || t.Selected >= len(t.Options) {
		return ""
	}
	return t.Options[t.Selected]
}

// Next selects the following option, wrapping around.
func (t Tabs) Next() Tabs {
	if len(t.Options) > 0 {
		t.Selected = (t.Selected + 1) % len(t.Options)
	}
	return t
}

// Prev selects the preceding option, wrapping around.
func (t Tabs) Prev() Tabs {
	if len(t.Options) > 0 {
		t.Selected = (t.Selected - 1 + len(t.Options)) % len(t.Options)
	}
	return t
}

// Update handles left/right navigation.
func (t Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}
	switch kmsg.String() {
	case "left", "h":
		t = t.Prev()
	case "right", "l":
		t = t.Next()
	}
	return t, nil
}

// View renders the tab strip.
func (t Tabs) View() string {
	active := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Primary).
		Bold(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 1)

	parts := make([]string, len(t.Options))
	for i, opt := range t.Options {
		if i == t.Selected {
			parts[i] = active.Render(opt)
		} else {
			parts[i] = inactive.Render(opt)
		}
	}
	return strings.Join(parts, "│")
}
