package playground

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/logger"
	pg "github.com/abhisek/academy/internal/playground"
	"github.com/abhisek/academy/internal/screen"
	"github.com/abhisek/academy/internal/ui/components"
	"github.com/abhisek/academy/internal/ui/layout"
	"github.com/abhisek/academy/internal/ui/theme"
)

// PlaygroundScreen edits the playground buffers. It has two modes: in
// command mode single keys run actions; in edit mode keys go to the editor
// until Esc.
type PlaygroundScreen struct {
	pg      *pg.Playground
	log     *logger.Logger
	editor  textarea.Model
	editing bool
	example int
}

var _ screen.Screen = (*PlaygroundScreen)(nil)
var _ screen.KeyHintProvider = (*PlaygroundScreen)(nil)
var _ screen.InputCapturer = (*PlaygroundScreen)(nil)

// New creates a PlaygroundScreen over a fresh playground.
func New(log *logger.Logger) *PlaygroundScreen {
	return newWith(pg.New(), log)
}

func newWith(p *pg.Playground, log *logger.Logger) *PlaygroundScreen {
	if log == nil {
		log = logger.Nop()
	}
	ed := textarea.New()
	ed.Placeholder = "Start typing..."
	ed.SetValue(p.Code(p.ActiveTab()))
	return &PlaygroundScreen{pg: p, log: log, editor: ed}
}

func (s *PlaygroundScreen) Init() tea.Cmd {
	return nil
}

func (s *PlaygroundScreen) Title() string {
	return "Playground"
}

// Capturing reports whether the editor has focus.
func (s *PlaygroundScreen) Capturing() bool {
	return s.editing
}

func (s *PlaygroundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editing {
			var cmd tea.Cmd
			s.editor, cmd = s.editor.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editing {
		return s, s.updateEditing(kmsg)
	}

	switch kmsg.String() {
	case "i", "enter":
		s.editing = true
		return s, s.editor.Focus()
	case "tab":
		s.switchTab(s.nextTab(1))
	case "shift+tab":
		s.switchTab(s.nextTab(-1))
	case "r":
		s.pg.Run()
		s.log.Debug("playground run", "tab", string(s.pg.ActiveTab()))
	case "x":
		s.pg.Reset()
		s.editor.SetValue("")
	case "e":
		s.loadNextExample()
	case "v":
		s.pg.TogglePreview()
	}
	return s, nil
}

func (s *PlaygroundScreen) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.editing = false
		s.editor.Blur()
		return nil
	case "ctrl+r":
		s.pg.Run()
		return nil
	}

	before := s.editor.Value()
	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	if after := s.editor.Value(); after != before {
		// Tab is validated by construction.
		_ = s.pg.Edit(s.pg.ActiveTab(), after)
	}
	return cmd
}

func (s *PlaygroundScreen) nextTab(delta int) pg.Tab {
	tabs := pg.AllTabs()
	i := 0
	for j, t := range tabs {
		if t == s.pg.ActiveTab() {
			i = j
		}
	}
	return tabs[(i+delta+len(tabs))%len(tabs)]
}

func (s *PlaygroundScreen) switchTab(tab pg.Tab) {
	if err := s.pg.SetActiveTab(tab); err != nil {
		s.log.Warn("switch tab", "tab", string(tab), "err", err)
		return
	}
	s.editor.SetValue(s.pg.Code(tab))
}

func (s *PlaygroundScreen) loadNextExample() {
	examples := s.pg.Examples()
	if len(examples) == 0 {
		return
	}
	if err := s.pg.LoadExample(s.example); err != nil {
		s.log.Warn("load example", "index", s.example, "err", err)
		return
	}
	s.log.Info("example loaded", "title", examples[s.example].Title)
	s.example = (s.example + 1) % len(examples)
	s.editor.SetValue(s.pg.Code(s.pg.ActiveTab()))
}

func (s *PlaygroundScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Stop editing"},
			{Key: "Ctrl+R", Description: "Run"},
		}
	}
	return []layout.KeyHint{
		{Key: "i", Description: "Edit"},
		{Key: "Tab", Description: "File"},
		{Key: "r", Description: "Run"},
		{Key: "e", Description: "Example"},
		{Key: "x", Description: "Reset"},
		{Key: "v", Description: "Preview"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlaygroundScreen) View(width, height int) string {
	labels := make([]string, 0, len(pg.AllTabs()))
	selected := 0
	for i, t := range pg.AllTabs() {
		labels = append(labels, t.Label())
		if t == s.pg.ActiveTab() {
			selected = i
		}
	}
	tabs := components.Tabs{Options: labels, Selected: selected}

	toolbar := components.Toolbar(
		components.NewButton("r", "Run", true),
		components.NewButton("e", "Example", false),
		components.NewButton("x", "Reset", false),
		components.NewButton("v", previewLabel(s.pg.PreviewVisible()), false),
	)

	top := tabs.View() + "   " + toolbar

	consoleHeight := pg.MaxLogEntries/2 + 2
	bodyHeight := max(height-lipgloss.Height(top)-consoleHeight-2, 3)

	editorWidth := width - 2
	var side string
	if s.pg.PreviewVisible() {
		editorWidth = width * 3 / 5
		side = s.renderPreview(width-editorWidth-3, bodyHeight)
	}

	s.editor.SetWidth(editorWidth)
	s.editor.SetHeight(bodyHeight)

	body := s.editor.View()
	if side != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", side)
	}

	console := s.renderConsole(width-2, consoleHeight)

	return strings.Join([]string{top, body, console}, "\n")
}

func previewLabel(visible bool) string {
	if visible {
		return "Hide preview"
	}
	return "Show preview"
}

func (s *PlaygroundScreen) renderPreview(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(pg.PreviewTitle)
	msg := lipgloss.NewStyle().Foreground(theme.TextDim).Width(max(width-4, 10)).Render(pg.PreviewMessage)
	btn := theme.ButtonActive.Render("Interactive Button")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(max(width, 14)).
		Height(max(height-2, 1)).
		Padding(0, 1).
		Render(title + "\n\n" + msg + "\n\n" + btn)
}

func (s *PlaygroundScreen) renderConsole(width, height int) string {
	logs := s.pg.Logs()
	visible := height - 1
	if len(logs) > visible {
		logs = logs[len(logs)-visible:]
	}

	ts := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := []string{theme.SectionHeader.Render("Console")}
	if len(logs) == 0 {
		lines = append(lines, theme.Hint.Render("No output yet"))
	}
	for _, e := range logs {
		lines = append(lines, fmt.Sprintf("%s %s", ts.Render("["+e.Timestamp()+"]"), theme.Body.Render(e.Message)))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}
