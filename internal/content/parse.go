package content

import "strings"

const boldDelim = "**"

// lineClass is the result of classifying one source line.
type lineClass struct {
	kind  NodeKind
	level int
	body  string
}

// classifier inspects a line and reports whether it claims it.
type classifier func(line string) (lineClass, bool)

// classifiers run in order; the first match wins. Headings are listed
// longest prefix first, and text is the catch-all.
var classifiers = []classifier{
	heading(3),
	heading(2),
	heading(1),
	listItem,
	text,
}

// heading matches `level` hash marks followed by a space and a non-empty title.
func heading(level int) classifier {
	prefix := strings.Repeat("#", level) + " "
	return func(line string) (lineClass, bool) {
		body, ok := strings.CutPrefix(line, prefix)
		if !ok || body == "" {
			return lineClass{}, false
		}
		return lineClass{kind: NodeHeading, level: level, body: body}, true
	}
}

func listItem(line string) (lineClass, bool) {
	body, ok := strings.CutPrefix(line, "- ")
	if !ok || body == "" {
		return lineClass{}, false
	}
	return lineClass{kind: NodeList, body: body}, true
}

func text(line string) (lineClass, bool) {
	return lineClass{kind: NodeText, body: line}, true
}

func classify(line string) lineClass {
	for _, c := range classifiers {
		if lc, ok := c(line); ok {
			return lc
		}
	}
	return lineClass{kind: NodeText, body: line}
}

// Parse splits content into lines, classifies each one and returns the
// resulting node sequence. Adjacent list items are merged into one list node;
// every other line boundary becomes a break node.
func Parse(content string) []Node {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	var nodes []Node
	for i, line := range lines {
		lc := classify(line)

		if lc.kind == NodeList {
			if n := len(nodes); n > 0 && nodes[n-1].Kind == NodeList {
				nodes[n-1].Items = append(nodes[n-1].Items, parseSpans(lc.body))
				continue
			}
		}

		if i > 0 {
			nodes = append(nodes, Node{Kind: NodeBreak})
		}

		switch lc.kind {
		case NodeHeading:
			nodes = append(nodes, Node{Kind: NodeHeading, Level: lc.level, Spans: parseSpans(lc.body)})
		case NodeList:
			nodes = append(nodes, Node{Kind: NodeList, Items: [][]Span{parseSpans(lc.body)}})
		default:
			// Blank lines contribute only their break.
			if lc.body != "" {
				nodes = append(nodes, Node{Kind: NodeText, Spans: parseSpans(lc.body)})
			}
		}
	}
	return nodes
}

// parseSpans splits a line into plain and bold spans. A bold span needs a
// non-empty body and takes the first closing delimiter; an opening delimiter
// with no partner is left in the text verbatim.
func parseSpans(s string) []Span {
	var spans []Span
	var plain strings.Builder

	for {
		open := strings.Index(s, boldDelim)
		if open < 0 {
			break
		}
		// Body must be at least one character long.
		searchFrom := open + len(boldDelim) + 1
		if searchFrom > len(s) {
			break
		}
		rel := strings.Index(s[searchFrom:], boldDelim)
		if rel < 0 {
			break
		}
		closeAt := searchFrom + rel

		plain.WriteString(s[:open])
		if plain.Len() > 0 {
			spans = append(spans, Span{Text: plain.String()})
			plain.Reset()
		}
		spans = append(spans, Span{Text: s[open+len(boldDelim) : closeAt], Bold: true})
		s = s[closeAt+len(boldDelim):]
	}

	plain.WriteString(s)
	if plain.Len() > 0 {
		spans = append(spans, Span{Text: plain.String()})
	}
	return spans
}
