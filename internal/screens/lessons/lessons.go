package lessons

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/catalog"
	"github.com/abhisek/academy/internal/logger"
	"github.com/abhisek/academy/internal/router"
	"github.com/abhisek/academy/internal/screen"
	"github.com/abhisek/academy/internal/screens/lesson"
	"github.com/abhisek/academy/internal/store"
	"github.com/abhisek/academy/internal/ui/components"
	"github.com/abhisek/academy/internal/ui/layout"
	"github.com/abhisek/academy/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowLesson
)

type row struct {
	kind     rowKind
	category catalog.Category
	lesson   *catalog.Lesson
}

// LessonsScreen lists the catalog grouped by category.
type LessonsScreen struct {
	store        *store.Store
	log          *logger.Logger
	rows         []row
	cursor       int
	scrollOffset int
	search       components.SearchInput
	progress     store.Progress
	unsubscribe  func()
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)
var _ screen.InputCapturer = (*LessonsScreen)(nil)
var _ screen.Closer = (*LessonsScreen)(nil)

// New creates a LessonsScreen and subscribes it to progress changes.
func New(st *store.Store, log *logger.Logger) *LessonsScreen {
	if log == nil {
		log = logger.Nop()
	}
	s := &LessonsScreen{
		store:    st,
		log:      log,
		search:   components.NewSearchInput("search lessons", 64),
		progress: st.Progress(),
	}
	s.unsubscribe = st.Subscribe(func(p store.Progress) {
		s.progress = p
	})
	s.rebuild()
	return s
}

func (s *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonsScreen) Title() string {
	return "Lessons"
}

// Close drops the progress subscription.
func (s *LessonsScreen) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Capturing reports whether the search box has focus.
func (s *LessonsScreen) Capturing() bool {
	return s.search.Active()
}

// rebuild lays out rows for the current query. Categories with no matching
// lessons are left out.
func (s *LessonsScreen) rebuild() {
	query := strings.TrimSpace(s.search.Value())

	var matches map[string]bool
	if query != "" {
		matches = make(map[string]bool)
		for _, l := range s.store.Catalog().Search(query) {
			matches[l.ID] = true
		}
	}

	var rows []row
	for _, cat := range s.store.Categories() {
		var lessonRows []row
		for i := range cat.Lessons {
			if matches != nil && !matches[cat.Lessons[i].ID] {
				continue
			}
			lessonRows = append(lessonRows, row{kind: rowLesson, category: cat, lesson: &cat.Lessons[i]})
		}
		if len(lessonRows) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowCategoryHeader, category: cat})
		rows = append(rows, lessonRows...)
	}

	s.rows = rows
	s.scrollOffset = 0
	s.cursor = -1
	s.moveCursor(1)
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.search.Active() {
		switch kmsg.String() {
		case "enter":
			s.search.Deactivate()
			return s, nil
		case "esc":
			s.search.Clear()
			s.rebuild()
			return s, nil
		}
		before := s.search.Value()
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		if s.search.Value() != before {
			s.rebuild()
		}
		return s, cmd
	}

	switch kmsg.String() {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "tab":
		s.nextCategory()
	case "shift+tab":
		s.prevCategory()
	case "/":
		return s, s.search.Activate()
	case "enter":
		return s, s.selectLesson()
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	if s.search.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Category"},
		{Key: "/", Description: "Search"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LessonsScreen) View(width, height int) string {
	bar := components.NewProgressBar(
		fmt.Sprintf("%d/%d complete", s.progress.Completed, s.progress.Total),
		s.progress.Fraction(), true, min(width-4, 60))
	footer := []string{"", "  " + bar.View()}
	if sv := s.search.View(); sv != "" {
		footer = append(footer, "  "+sv)
	}

	listHeight := max(height-len(footer), 1)

	var lines []string
	if len(s.rows) == 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("  No lessons match %q", s.search.Value())))
	} else {
		s.adjustScroll(listHeight)
		for i, r := range s.rows {
			if i < s.scrollOffset {
				continue
			}
			if len(lines) >= listHeight {
				break
			}
			switch r.kind {
			case rowCategoryHeader:
				lines = append(lines, s.renderCategoryHeader(r.category, width))
			case rowLesson:
				lines = append(lines, s.renderLessonRow(r, i == s.cursor, width))
			}
		}
	}

	for len(lines) < listHeight {
		lines = append(lines, "")
	}
	return strings.Join(append(lines, footer...), "\n")
}

// moveCursor moves the cursor by delta, skipping category headers.
func (s *LessonsScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextCategory jumps the cursor to the first lesson in the next category.
func (s *LessonsScreen) nextCategory() {
	if s.cursor >= len(s.rows) {
		return
	}
	current := s.rows[s.cursor].category.ID
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLesson && s.rows[i].category.ID != current {
			s.cursor = i
			return
		}
	}
}

// prevCategory jumps the cursor to the first lesson in the previous category.
func (s *LessonsScreen) prevCategory() {
	if s.cursor >= len(s.rows) {
		return
	}
	current := s.rows[s.cursor].category.ID

	prev := ""
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowLesson && s.rows[i].category.ID != current {
			prev = s.rows[i].category.ID
			break
		}
	}
	if prev == "" {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowLesson && r.category.ID == prev {
			s.cursor = i
			return
		}
	}
}

// adjustScroll keeps the cursor, and the header above it, on screen.
func (s *LessonsScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowCategoryHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *LessonsScreen) selectLesson() tea.Cmd {
	if s.cursor >= len(s.rows) {
		return nil
	}
	r := s.rows[s.cursor]
	if r.kind != rowLesson || r.lesson == nil {
		return nil
	}

	detail := lesson.Open(s.store, s.log, r.lesson.ID)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *LessonsScreen) renderCategoryHeader(cat catalog.Category, width int) string {
	name := strings.ToUpper(cat.Name)
	if cat.Icon != "" {
		name = cat.Icon + " " + name
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		PaddingLeft(2).
		Render(name)
}

func (s *LessonsScreen) renderLessonRow(r row, selected bool, width int) string {
	if r.lesson == nil {
		return ""
	}
	done := s.store.IsCompleted(r.lesson.ID)

	badgeWidth := 16
	nameWidth := max(width-4-2-2-badgeWidth-2, 10)

	name := r.lesson.Title
	if lipgloss.Width(name) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	nameStyle := theme.Unselected
	switch {
	case selected:
		nameStyle = theme.Selected
	case done:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	cursor := "  "
	if selected {
		cursor = theme.Selected.Render("▸ ")
	}
	icon := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
	if done {
		icon = theme.Completed.Render("✓")
	}

	return fmt.Sprintf("  %s%s %s  %s",
		cursor,
		icon,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		components.DifficultyBadge(r.lesson.Difficulty),
	)
}
