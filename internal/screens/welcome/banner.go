package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/rmagpantay/aral/internal/ui/theme"
)

const bannerArt = `
  █████╗ ██████╗  █████╗ ██╗
 ██╔══██╗██╔══██╗██╔══██╗██║
 ███████║██████╔╝███████║██║
 ██╔══██║██╔══██╗██╔══██║██║
 ██║  ██║██║  ██║██║  ██║███████╗
 ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝`

const bannerCompact = "A R A L"

// RenderBanner returns the ARAL banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 38 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 38 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
