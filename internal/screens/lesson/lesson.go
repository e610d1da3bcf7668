package lesson

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/catalog"
	"github.com/abhisek/academy/internal/content"
	"github.com/abhisek/academy/internal/logger"
	"github.com/abhisek/academy/internal/router"
	"github.com/abhisek/academy/internal/screen"
	"github.com/abhisek/academy/internal/screens/notfound"
	playgroundscreen "github.com/abhisek/academy/internal/screens/playground"
	"github.com/abhisek/academy/internal/store"
	"github.com/abhisek/academy/internal/ui/components"
	"github.com/abhisek/academy/internal/ui/layout"
	"github.com/abhisek/academy/internal/ui/theme"
)

// maxContentWidth caps the reading column.
const maxContentWidth = 80

// LessonScreen shows one lesson's formatted content and code example.
type LessonScreen struct {
	store        *store.Store
	log          *logger.Logger
	lesson       catalog.Lesson
	category     catalog.Category
	nodes        []content.Node
	scrollOffset int
	maxScroll    int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// Open returns the detail screen for id, or a not-found screen when the
// id is unknown.
func Open(st *store.Store, log *logger.Logger, id string) screen.Screen {
	l, ok := st.LessonByID(id)
	if !ok {
		if log != nil {
			log.Warn("lesson not found", "lesson_id", id)
		}
		return notfound.New(id)
	}
	return New(st, log, l)
}

// New creates a LessonScreen for l.
func New(st *store.Store, log *logger.Logger, l catalog.Lesson) *LessonScreen {
	if log == nil {
		log = logger.Nop()
	}
	cat, _ := st.Catalog().Category(l.Category)
	return &LessonScreen{
		store:    st,
		log:      log.With("lesson_id", l.ID),
		lesson:   l,
		category: cat,
		nodes:    content.Parse(l.Content),
	}
}

func (d *LessonScreen) Init() tea.Cmd { return nil }
func (d *LessonScreen) Title() string { return d.lesson.Title }

func (d *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		d.scroll(-1)
	case "down", "j":
		d.scroll(1)
	case "pgup", "b":
		d.scroll(-10)
	case "pgdown", "space", " ":
		d.scroll(10)
	case "home", "g":
		d.scrollOffset = 0
	case "end", "G":
		d.scrollOffset = d.maxScroll
	case "c":
		if d.store.MarkComplete(d.lesson.ID) {
			d.log.Info("lesson completed")
		}
	case "u":
		if d.store.MarkIncomplete(d.lesson.ID) {
			d.log.Info("lesson marked incomplete")
		}
	case "p":
		pgScreen := playgroundscreen.New(d.log)
		return d, func() tea.Msg {
			return router.PushScreenMsg{Screen: pgScreen}
		}
	case "q":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

func (d *LessonScreen) scroll(delta int) {
	d.scrollOffset = max(0, min(d.scrollOffset+delta, d.maxScroll))
}

func (d *LessonScreen) KeyHints() []layout.KeyHint {
	complete := layout.KeyHint{Key: "c", Description: "Complete"}
	if d.store.IsCompleted(d.lesson.ID) {
		complete = layout.KeyHint{Key: "u", Description: "Mark incomplete"}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		complete,
		{Key: "p", Description: "Playground"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *LessonScreen) View(width, height int) string {
	cw := min(width-4, maxContentWidth)

	lines := strings.Split(d.render(cw), "\n")

	d.maxScroll = max(0, len(lines)-height)
	d.scrollOffset = min(d.scrollOffset, d.maxScroll)

	end := min(len(lines), d.scrollOffset+height)
	visible := lines[d.scrollOffset:end]

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(visible, "\n")))
}

func (d *LessonScreen) render(cw int) string {
	l := d.lesson
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(l.Title))
	b.WriteString("\n")

	meta := []string{components.DifficultyBadge(l.Difficulty)}
	if d.category.Name != "" {
		meta = append(meta, dimStyle.Render(fmt.Sprintf("%s %s", d.category.Icon, d.category.Name)))
	}
	if d.store.IsCompleted(l.ID) {
		meta = append(meta, theme.Completed.Render("✓ Completed"))
	}
	b.WriteString(strings.Join(meta, "  "))
	b.WriteString("\n")

	if l.Description != "" {
		b.WriteString(dimStyle.Italic(true).Width(cw).Render(l.Description))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(strings.Repeat("─", cw)))
	b.WriteString("\n\n")

	b.WriteString(content.RenderTerminal(d.nodes, cw))
	b.WriteString("\n")

	if l.HasCodeExample() {
		b.WriteString("\n")
		b.WriteString(theme.SectionHeader.Render("Code Example"))
		b.WriteString("\n")
		b.WriteString(theme.CodeBlock.Render(strings.TrimRight(l.CodeExample, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}
