package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/ui/theme"
)

// Terminal size limits. Below MinWidth x MinHeight only a resize notice is
// drawn; below the compact thresholds screens drop decoration.
const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30

	// ChromeHeight is the rows taken by the header and footer bars.
	ChromeHeight = 6
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight is the number of rows left for the active screen once the
// rendered header and footer are placed in a terminal of total rows.
func ContentHeight(header, footer string, total int) int {
	return max(total-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Body.Render(msg))
}

// HeaderStatus is the progress summary shown on the right of the header.
type HeaderStatus struct {
	Completed int
	Total     int
	Percent   int
}

// String formats the status as "done/total · pct%".
func (s HeaderStatus) String() string {
	return fmt.Sprintf("✓ %d/%d · %d%%", s.Completed, s.Total, s.Percent)
}

var (
	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
	hintKey     = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	hintDesc    = lipgloss.NewStyle().Foreground(theme.TextDim)
	barStyle    = lipgloss.NewStyle().
			Background(theme.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border)
)

// RenderHeader draws the brand on the left, the screen title centred and
// the progress status on the right.
func RenderHeader(title string, status HeaderStatus, width int) string {
	left := brandStyle.Render("  Academy")
	right := statusStyle.Render(status.String())

	inner := max(width-4, 0)
	middle := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	center := lipgloss.PlaceHorizontal(middle, lipgloss.Center, theme.Body.Render(title))

	return barStyle.Width(width).Render(left + center + right)
}

// RenderFooter draws the key hints for the active screen.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = hintKey.Render(h.Key) + " " + hintDesc.Render(h.Description)
	}
	return barStyle.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, sizing the content block
// so the frame fills exactly height rows.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
