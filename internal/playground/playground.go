// Package playground holds the state behind the code playground. It is
// cosmetic: buffers can be edited and "run", but nothing is compiled or
// executed; actions only append console lines.
package playground

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"slices"
	"time"
)

// MaxLogEntries is how many console lines are kept.
const MaxLogEntries = 10

// Tab identifies one of the editor buffers.
type Tab string

const (
	TabComponent Tab = "component"
	TabTemplate  Tab = "template"
	TabStyles    Tab = "styles"
)

// AllTabs returns the tabs in display order.
func AllTabs() []Tab {
	return []Tab{TabComponent, TabTemplate, TabStyles}
}

// Label returns the tab's display name.
func (t Tab) Label() string {
	switch t {
	case TabComponent:
		return "Component"
	case TabTemplate:
		return "Template"
	case TabStyles:
		return "Styles"
	default:
		return string(t)
	}
}

func (t Tab) valid() bool {
	return slices.Contains(AllTabs(), t)
}

// Example is a ready-made set of buffers.
type Example struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Component   string   `json:"component"`
	Template    string   `json:"template"`
	Styles      string   `json:"styles"`
}

// LogEntry is one console line.
type LogEntry struct {
	Time    time.Time
	Message string
}

// Timestamp formats the entry time the way the console shows it.
func (e LogEntry) Timestamp() string {
	return e.Time.Format("15:04:05")
}

//go:embed examples.json
var examplesJSON []byte

type examplesDoc struct {
	Starter struct {
		Component string `json:"component"`
		Template  string `json:"template"`
		Styles    string `json:"styles"`
	} `json:"starter"`
	Examples []Example `json:"examples"`
}

var builtin = mustLoadExamples()

func mustLoadExamples() examplesDoc {
	var doc examplesDoc
	if err := json.Unmarshal(examplesJSON, &doc); err != nil {
		panic(fmt.Sprintf("embedded playground examples: %v", err))
	}
	return doc
}

// Examples returns the built-in examples.
func Examples() []Example {
	return slices.Clone(builtin.Examples)
}

// Playground is the editor state for one session.
type Playground struct {
	active      Tab
	code        map[Tab]string
	showPreview bool
	logs        []LogEntry
	examples    []Example
	now         func() time.Time
}

// New creates a playground with the starter buffers loaded.
func New() *Playground {
	return NewWithClock(time.Now)
}

// NewWithClock is New with an injectable clock for console timestamps.
func NewWithClock(now func() time.Time) *Playground {
	return &Playground{
		active: TabComponent,
		code: map[Tab]string{
			TabComponent: builtin.Starter.Component,
			TabTemplate:  builtin.Starter.Template,
			TabStyles:    builtin.Starter.Styles,
		},
		showPreview: true,
		examples:    Examples(),
		now:         now,
	}
}

// ActiveTab returns the tab being edited.
func (p *Playground) ActiveTab() Tab {
	return p.active
}

// SetActiveTab switches the editor to tab. Unknown tabs are rejected.
func (p *Playground) SetActiveTab(tab Tab) error {
	if !tab.valid() {
		return fmt.Errorf("unknown tab %q", tab)
	}
	p.active = tab
	return nil
}

// NextTab cycles to the following tab.
func (p *Playground) NextTab() {
	tabs := AllTabs()
	i := slices.Index(tabs, p.active)
	p.active = tabs[(i+1)%len(tabs)]
}

// Code returns the buffer for tab.
func (p *Playground) Code(tab Tab) string {
	return p.code[tab]
}

// Edit replaces the buffer for tab and logs a preview refresh.
func (p *Playground) Edit(tab Tab, code string) error {
	if !tab.valid() {
		return fmt.Errorf("unknown tab %q", tab)
	}
	p.code[tab] = code
	p.logf("Preview updated")
	return nil
}

// PreviewVisible reports whether the preview pane is shown.
func (p *Playground) PreviewVisible() bool {
	return p.showPreview
}

// TogglePreview shows or hides the preview pane.
func (p *Playground) TogglePreview() {
	p.showPreview = !p.showPreview
}

// Run pretends to run the buffers.
func (p *Playground) Run() {
	p.logf("Code executed successfully!")
	p.logf("Component rendered in preview")
}

// Reset empties every buffer and the console.
func (p *Playground) Reset() {
	for _, tab := range AllTabs() {
		p.code[tab] = ""
	}
	p.logs = nil
	p.logf("Code reset to empty state")
}

// Examples returns the examples this playground offers.
func (p *Playground) Examples() []Example {
	return slices.Clone(p.examples)
}

// LoadExample replaces all buffers with example i.
func (p *Playground) LoadExample(i int) error {
	if i < 0 || i >= len(p.examples) {
		return fmt.Errorf("example %d out of range (have %d)", i, len(p.examples))
	}
	ex := p.examples[i]
	p.code[TabComponent] = ex.Component
	p.code[TabTemplate] = ex.Template
	p.code[TabStyles] = ex.Styles
	p.logf("Loaded example: %s", ex.Title)
	return nil
}

// LoadDefaultExample loads the first example.
func (p *Playground) LoadDefaultExample() error {
	return p.LoadExample(0)
}

// Logs returns the console lines, oldest first.
func (p *Playground) Logs() []LogEntry {
	return slices.Clone(p.logs)
}

func (p *Playground) logf(format string, args ...any) {
	p.logs = append(p.logs, LogEntry{Time: p.now(), Message: fmt.Sprintf(format, args...)})
	if len(p.logs) > MaxLogEntries {
		p.logs = slices.Clone(p.logs[len(p.logs)-MaxLogEntries:])
	}
}

// Preview copy shown instead of a real render.
const (
	PreviewTitle   = "Live Preview"
	PreviewMessage = "This is a simplified preview. In a full implementation, your Angular code would be compiled and rendered here."
)

var exampleSelectors = regexp.MustCompile(`\.demo-container|\.binding-demo|\.parent-child-demo`)

// PreviewHTML returns the static preview fragment, carrying the styles
// buffer with example selectors rewritten to plain divs.
func (p *Playground) PreviewHTML() string {
	styles := exampleSelectors.ReplaceAllString(p.code[TabStyles], "div")
	return fmt.Sprintf(`<div style="%s"><h2>%s</h2><p>%s</p><button>Interactive Button</button></div>`,
		html.EscapeString(styles), PreviewTitle, PreviewMessage)
}
