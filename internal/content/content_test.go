package content

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/academy/internal/catalog"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"heading then text", "# Title\nplain text", "<h1>Title</h1><br>plain text"},
		{"adjacent list items", "- a\n- b", "<ul><li>a</li><li>b</li></ul>"},
		{"bold", "**bold**", "<strong>bold</strong>"},
		{"h2", "## Key Features:", "<h2>Key Features:</h2>"},
		{"h3", "### Deep", "<h3>Deep</h3>"},
		{"four hashes is text", "#### Deeper", "#### Deeper"},
		{"hash without space is text", "#tag", "#tag"},
		{"empty heading is text", "# ", "# "},
		{"dash without space is text", "-x", "-x"},
		{"indented dash is text", "  - x", "  - x"},
		{"empty", "", ""},
		{"plain lines", "one\ntwo", "one<br>two"},
		{"blank line", "one\n\ntwo", "one<br><br>two"},
		{"crlf", "one\r\ntwo", "one<br>two"},
		{"text around list", "intro\n- a\n- b\noutro", "intro<br><ul><li>a</li><li>b</li></ul><br>outro"},
		{"separate lists", "- a\n\n- b", "<ul><li>a</li></ul><br><br><ul><li>b</li></ul>"},
		{"bold in list", "- **Routes**: URL patterns", "<ul><li><strong>Routes</strong>: URL patterns</li></ul>"},
		{"bold in heading", "# **Big** news", "<h1><strong>Big</strong> news</h1>"},
		{"two bold spans", "**a** and **b**", "<strong>a</strong> and <strong>b</strong>"},
		{"unmatched bold", "**open", "**open"},
		{"empty bold", "****", "****"},
		{"bold takes first close", "***a**", "<strong>*a</strong>"},
		{"escapes html", "<b>x</b> & y", "&lt;b&gt;x&lt;/b&gt; &amp; y"},
		{"escapes inside bold", "**<i>**", "<strong>&lt;i&gt;</strong>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}

func TestParse_NodeSequence(t *testing.T) {
	nodes := Parse("# Title\n- **a**\n- b\ntext")

	kinds := make([]NodeKind, len(nodes))
	for i, n := range nodes {
		kinds[i] = n.Kind
	}
	assert.Equal(t, []NodeKind{NodeHeading, NodeBreak, NodeList, NodeBreak, NodeText}, kinds)

	assert.Equal(t, 1, nodes[0].Level)
	require.Len(t, nodes[2].Items, 2)
	assert.Equal(t, []Span{{Text: "a", Bold: true}}, nodes[2].Items[0])
	assert.Equal(t, []Span{{Text: "b"}}, nodes[2].Items[1])
}

func TestParse_HeadingLevels(t *testing.T) {
	for level, line := range map[int]string{1: "# x", 2: "## x", 3: "### x"} {
		nodes := Parse(line)
		require.Len(t, nodes, 1, line)
		assert.Equal(t, NodeHeading, nodes[0].Kind, line)
		assert.Equal(t, level, nodes[0].Level, line)
		assert.Equal(t, "x", nodes[0].PlainText(), line)
	}
}

func TestParseSpans(t *testing.T) {
	tests := []struct {
		in   string
		want []Span
	}{
		{"", nil},
		{"plain", []Span{{Text: "plain"}}},
		{"a **b** c", []Span{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c"}}},
		{"**b**", []Span{{Text: "b", Bold: true}}},
		{"** x", []Span{{Text: "** x"}}},
		{"**a** **", []Span{{Text: "a", Bold: true}, {Text: " **"}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSpans(tt.in), "parseSpans(%q)", tt.in)
	}
}

func TestPlainText(t *testing.T) {
	nodes := Parse("- **a**\n- b")
	require.Len(t, nodes, 1)
	assert.Equal(t, "a\nb", nodes[0].PlainText())
	assert.Equal(t, "\n", Node{Kind: NodeBreak}.PlainText())
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "heading", NodeHeading.String())
	assert.Equal(t, "unknown", NodeKind(99).String())
}

func TestRenderTerminal(t *testing.T) {
	out := ansi.Strip(RenderTerminal(Parse("# Title\nSome **bold** words\n- first\n- second"), 60))

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Some bold words")
	assert.Contains(t, out, "•")
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "<h1>")

	title := strings.Index(out, "Title")
	body := strings.Index(out, "Some bold words")
	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	assert.True(t, title < body && body < first && first < second,
		"blocks out of order: %q", out)
}

func TestRenderTerminal_NoWrap(t *testing.T) {
	out := RenderTerminal(Parse("one\ntwo"), 0)
	assert.Equal(t, 2, strings.Count(out, "\n")+1)
}

func TestRenderTerminal_WrapsWithoutPadding(t *testing.T) {
	src := "## Overview\nAngular components pair a TypeScript class with a template and styles.\n" +
		"- Services hold logic that is shared between several components in an app\n- short"
	out := ansi.Strip(RenderTerminal(Parse(src), 24))

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 4)
	for _, line := range lines {
		assert.Equal(t, strings.TrimRight(line, " "), line, "trailing whitespace in %q", line)
		assert.LessOrEqual(t, ansi.StringWidth(line), 24, "line too wide: %q", line)
	}
	assert.Contains(t, out, "  • Services")
	assert.Contains(t, out, "  • short")
}

func TestFormat_SeedLessons(t *testing.T) {
	for _, l := range catalog.Default().Lessons() {
		out := Format(l.Content)
		assert.NotContains(t, out, "**", "lesson %q left bold markers", l.ID)
		assert.True(t, strings.HasPrefix(out, "<h1>"), "lesson %q should open with a heading", l.ID)
		assert.Contains(t, out, "<ul><li>", "lesson %q should contain a list", l.ID)
	}
}
