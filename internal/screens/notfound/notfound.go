package notfound

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/router"
	"github.com/abhisek/academy/internal/screen"
	"github.com/abhisek/academy/internal/ui/layout"
	"github.com/abhisek/academy/internal/ui/theme"
)

// NotFoundScreen is shown when a lesson id does not resolve.
type NotFoundScreen struct {
	id string
}

var _ screen.Screen = (*NotFoundScreen)(nil)

// New creates a NotFoundScreen for the missing lesson id.
func New(id string) *NotFoundScreen {
	return &NotFoundScreen{id: id}
}

func (n *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (n *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return n, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return n, nil
}

func (n *NotFoundScreen) View(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Lesson not found")
	body := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("There is no lesson with id %q.\nIt may have been renamed or removed.", n.id))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(title + "\n\n" + body)
}

func (n *NotFoundScreen) Title() string {
	return "Not Found"
}

func (n *NotFoundScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
