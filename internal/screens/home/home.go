package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/logger"
	"github.com/abhisek/academy/internal/router"
	"github.com/abhisek/academy/internal/screen"
	"github.com/abhisek/academy/internal/screens/lessons"
	playgroundscreen "github.com/abhisek/academy/internal/screens/playground"
	"github.com/abhisek/academy/internal/store"
	"github.com/abhisek/academy/internal/ui/components"
	"github.com/abhisek/academy/internal/ui/layout"
	"github.com/abhisek/academy/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu        components.Menu
	categories  int
	progress    store.Progress
	unsubscribe func()
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Closer = (*HomeScreen)(nil)

// New creates a HomeScreen subscribed to st's progress.
func New(st *store.Store, log *logger.Logger) *HomeScreen {
	if log == nil {
		log = logger.Nop()
	}

	items := []components.MenuItem{
		{Label: "Lessons", Description: "Browse lessons by category", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessons.New(st, log)}
			}
		}},
		{Label: "Playground", Description: "Experiment with component code", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: playgroundscreen.New(log)}
			}
		}},
		{Label: "Quit", Description: "Leave the academy", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{
		menu:       components.NewMenu(items),
		categories: len(st.Categories()),
		progress:   st.Progress(),
	}
	h.unsubscribe = st.Subscribe(func(p store.Progress) {
		h.progress = p
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Close drops the progress subscription.
func (h *HomeScreen) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
		h.unsubscribe = nil
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height+layout.ChromeHeight) || layout.IsCompactWidth(width)

	title := theme.Title.Width(cw).Render("A C A D E M Y")
	subtitle := theme.Subtitle.Width(cw).Render("Interactive Angular lessons in your terminal")

	sections := []string{title}
	if !compact {
		sections = append(sections, subtitle)
	}
	sections = append(sections, h.renderStats(cw), h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(content))
}

func (h *HomeScreen) renderStats(cw int) string {
	p := h.progress
	bar := components.NewProgressBar("", p.Fraction(), true, cw-6)

	stats := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d of %d lessons complete across %d categories", p.Completed, p.Total, h.categories))

	return components.Card(stats+"\n"+bar.View(), cw)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
