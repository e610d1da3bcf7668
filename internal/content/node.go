// Package content turns lesson bodies written in a small markdown-like
// dialect into display markup.
//
// The dialect has four constructs: `#`, `##` and `###` headings, `- ` list
// items, `**bold**` spans, and line breaks. Input is parsed into a flat node
// sequence first and rendered afterwards, so no rule ever sees the output of
// another rule.
package content

// NodeKind identifies a block in the parsed node sequence.
type NodeKind int

const (
	NodeText    NodeKind = iota // A line of inline content
	NodeHeading                 // A heading of Level 1–3
	NodeList                    // Adjacent list items
	NodeBreak                   // A source line break between blocks
)

// String returns the kind name, used in test failure messages.
func (k NodeKind) String() string {
	switch k {
	case NodeText:
		return "text"
	case NodeHeading:
		return "heading"
	case NodeList:
		return "list"
	case NodeBreak:
		return "break"
	default:
		return "unknown"
	}
}

// Span is a run of inline text, optionally bold.
type Span struct {
	Text string
	Bold bool
}

// Node is one block of parsed content. Spans is set for text and heading
// nodes; Items for list nodes.
type Node struct {
	Kind  NodeKind
	Level int
	Spans []Span
	Items [][]Span
}

// PlainText returns the node's text with all markup removed.
func (n Node) PlainText() string {
	switch n.Kind {
	case NodeList:
		var s string
		for i, item := range n.Items {
			if i > 0 {
				s += "\n"
			}
			s += spansText(item)
		}
		return s
	case NodeBreak:
		return "\n"
	default:
		return spansText(n.Spans)
	}
}

func spansText(spans []Span) string {
	var s string
	for _, sp := range spans {
		s += sp.Text
	}
	return s
}
