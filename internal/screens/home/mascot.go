package home

import (
	"charm.land/lipgloss/v2"

	"github.com/rmagpantay/aral/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default blue
	MascotCelebrating                      // Gold, star eyes — recent strong score
	MascotCheering                         // Raised flag — weak skill areas need work
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ A+✓ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ A+✓ │
└─╥═╥─┘
  ╚═╝`

const mascotCheering = `┌─────┐
│ ◉ ◉ │ ⚑
│  ▽  │
│ A+✓ │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotCheering:
		art = mascotCheering
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
