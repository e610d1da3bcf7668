package content

import (
	"fmt"
	"html"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/ui/theme"
)

// Format converts lesson content into an HTML fragment.
func Format(content string) string {
	return RenderHTML(Parse(content))
}

// RenderHTML renders a node sequence as an HTML fragment. All text is escaped.
func RenderHTML(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case NodeHeading:
			fmt.Fprintf(&b, "<h%d>", n.Level)
			writeSpansHTML(&b, n.Spans)
			fmt.Fprintf(&b, "</h%d>", n.Level)
		case NodeList:
			b.WriteString("<ul>")
			for _, item := range n.Items {
				b.WriteString("<li>")
				writeSpansHTML(&b, item)
				b.WriteString("</li>")
			}
			b.WriteString("</ul>")
		case NodeBreak:
			b.WriteString("<br>")
		default:
			writeSpansHTML(&b, n.Spans)
		}
	}
	return b.String()
}

func writeSpansHTML(b *strings.Builder, spans []Span) {
	for _, sp := range spans {
		if sp.Bold {
			b.WriteString("<strong>")
			b.WriteString(html.EscapeString(sp.Text))
			b.WriteString("</strong>")
			continue
		}
		b.WriteString(html.EscapeString(sp.Text))
	}
}

var (
	headingStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true),
		2: lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true),
		3: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
	}
	strongStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	bulletStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
)

// RenderTerminal renders a node sequence for the terminal, wrapping text
// blocks at width columns. A width below 1 disables wrapping. Lines are never
// padded, so output carries no trailing whitespace.
func RenderTerminal(nodes []Node, width int) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case NodeHeading:
			style, ok := headingStyles[n.Level]
			if !ok {
				style = headingStyles[1]
			}
			b.WriteString(wrap(spansTerminal(n.Spans, style), width))
		case NodeList:
			for i, item := range n.Items {
				if i > 0 {
					b.WriteString("\n")
				}
				writeBullet(&b, spansTerminal(item, theme.Body), width)
			}
		case NodeBreak:
			b.WriteString("\n")
		default:
			b.WriteString(wrap(spansTerminal(n.Spans, theme.Body), width))
		}
	}
	return b.String()
}

const bulletIndent = "    "

// writeBullet writes one list item, hanging continuation lines under the
// item text.
func writeBullet(b *strings.Builder, body string, width int) {
	lines := strings.Split(wrap(body, width-len(bulletIndent)), "\n")
	b.WriteString(bulletStyle.Render("  • "))
	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		b.WriteString("\n" + bulletIndent + line)
	}
}

func spansTerminal(spans []Span, base lipgloss.Style) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Bold {
			b.WriteString(strongStyle.Render(sp.Text))
			continue
		}
		b.WriteString(base.Render(sp.Text))
	}
	return b.String()
}

func wrap(s string, width int) string {
	if width < 1 {
		return s
	}
	return lipgloss.Wrap(s, width, "")
}
