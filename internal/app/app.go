package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/academy/internal/logger"
	"github.com/abhisek/academy/internal/router"
	"github.com/abhisek/academy/internal/screen"
	"github.com/abhisek/academy/internal/screens/home"
	"github.com/abhisek/academy/internal/screens/lesson"
	"github.com/abhisek/academy/internal/screens/welcome"
	"github.com/abhisek/academy/internal/store"
	"github.com/abhisek/academy/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Store  *store.Store
	Logger *logger.Logger

	// StartLesson, when set, opens that lesson on top of the home screen.
	StartLesson string

	// SkipWelcome starts on the home screen without the splash.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	store  *store.Store
	log    *logger.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome or home screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	homeFactory := func() screen.Screen {
		return home.New(opts.Store, log)
	}

	var r *router.Router
	if opts.SkipWelcome || opts.StartLesson != "" {
		r = router.New(homeFactory())
	} else {
		r = router.New(welcome.New(homeFactory))
	}
	if opts.StartLesson != "" {
		r.Push(lesson.Open(opts.Store, log, opts.StartLesson))
	}

	return AppModel{
		router: r,
		store:  opts.Store,
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.log.Info("quit requested")
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.Capturing() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg:
		m.log.Debug("push screen", "title", msg.Screen.Title(), "depth", m.router.Depth()+1)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render builds the full frame as a string.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.store.Progress()
	header := layout.RenderHeader(title, layout.HeaderStatus{
		Completed: p.Completed,
		Total:     p.Total,
		Percent:   p.Percent,
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.log.Info("tui started", "lessons", m.store.Progress().Total, "start_lesson", opts.StartLesson)
	defer m.log.Info("tui stopped")

	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
