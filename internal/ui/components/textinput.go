package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as a one-line filter box.
type SearchInput struct {
	Model  textinput.Model
	active bool
}

// NewSearchInput creates an inactive search box.
func NewSearchInput(placeholder string, charLimit int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return SearchInput{Model: ti}
}

// Activate focuses the box for typing.
func (s *SearchInput) Activate() tea.Cmd {
	s.active = true
	return s.Model.Focus()
}

// Deactivate stops accepting keys but keeps the query.
func (s *SearchInput) Deactivate() {
	s.active = false
	s.Model.Blur()
}

// Clear empties the query and deactivates the box.
func (s *SearchInput) Clear() {
	s.Model.SetValue("")
	s.Deactivate()
}

// Active reports whether the box is taking input.
func (s SearchInput) Active() bool {
	return s.active
}

// Update forwards messages to the text input while active.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the search box, or nothing when idle with no query.
func (s SearchInput) View() string {
	if !s.active && s.Value() == "" {
		return ""
	}
	if !s.active {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("/ " + s.Value())
	}
	return s.Model.View()
}

// Value returns the current query.
func (s SearchInput) Value() string {
	return s.Model.Value()
}
