package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/academy/internal/ui/theme"
)

const bannerArt = `
  █████╗   ██████╗  █████╗  ██████╗  ███████╗ ███╗   ███╗ ██╗   ██╗
 ██╔══██╗ ██╔════╝ ██╔══██╗ ██╔══██╗ ██╔════╝ ████╗ ████║ ╚██╗ ██╔╝
 ███████║ ██║      ███████║ ██║  ██║ █████╗   ██╔████╔██║  ╚████╔╝
 ██╔══██║ ██║      ██╔══██║ ██║  ██║ ██╔══╝   ██║╚██╔╝██║   ╚██╔╝
 ██║  ██║ ╚██████╗ ██║  ██║ ██████╔╝ ███████╗ ██║ ╚═╝ ██║    ██║
 ╚═╝  ╚═╝  ╚═════╝ ╚═╝  ╚═╝ ╚═════╝  ╚══════╝ ╚═╝     ╚═╝    ╚═╝`

const bannerCompact = "A C A D E M Y"

// bannerMinWidth is the narrowest terminal that fits the block banner.
const bannerMinWidth = 69

// RenderBanner returns the ACADEMY banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
