package library

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	asmt "github.com/rmagpantay/aral/internal/assessment"
	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/screen"
	assessmentscreen "github.com/rmagpantay/aral/internal/screens/assessment"
	"github.com/rmagpantay/aral/internal/ui/components"
	"github.com/rmagpantay/aral/internal/ui/layout"
	"github.com/rmagpantay/aral/internal/ui/theme"
)

// LibraryScreen lists the assessment catalog and launches attempts.
type LibraryScreen struct {
	engine      *asmt.Engine
	assessments []catalog.Assessment
	selected    int
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a new LibraryScreen over the full catalog.
func New(engine *asmt.Engine) *LibraryScreen {
	return &LibraryScreen{
		engine:      engine,
		assessments: catalog.All(),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (s *LibraryScreen) Title() string {
	return "Assessments"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.assessments)-1 {
			s.selected++
		}
	case "enter":
		if s.selected >= 0 && s.selected < len(s.assessments) {
			a := s.assessments[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessmentscreen.New(s.engine, a.ID),
				}
			}
		}
	}

	return s, nil
}

func (s *LibraryScreen) View(width, height int) string {
	if len(s.assessments) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  No assessments available.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.assessments {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-36s %-12s ages %-6s %2d min",
			prefix, a.Title, string(a.Subject), a.AgeGroup, int(a.Duration.Minutes()))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	// Detail card for the highlighted assessment.
	a := s.assessments[s.selected]
	detail := fmt.Sprintf("%s\n\n%s\n\n%d questions  ·  %s difficulty",
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(a.Title),
		lipgloss.NewStyle().Foreground(theme.Text).Render(a.Description),
		len(a.Questions), a.Difficulty)

	cw := components.ContentWidth(width)
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeCard(detail, cw)))

	return b.String()
}
