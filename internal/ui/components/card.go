package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/catalog"
	"github.com/abhisek/academy/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for centered sections
// so boxes line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.Width(cw - 2).Render(content)
}

// Badge renders a short colored label, e.g. a difficulty.
func Badge(label string, fg color.Color) string {
	return lipgloss.NewStyle().Foreground(fg).Bold(true).Render("[" + label + "]")
}

// DifficultyBadge renders a lesson difficulty in its color.
func DifficultyBadge(d catalog.Difficulty) string {
	fg := theme.Advanced
	switch d {
	case catalog.DifficultyBeginner:
		fg = theme.Beginner
	case catalog.DifficultyIntermediate:
		fg = theme.Intermediate
	}
	return Badge(d.Label(), fg)
}
