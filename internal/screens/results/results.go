package results

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/scoring"
	"github.com/rmagpantay/aral/internal/screen"
	"github.com/rmagpantay/aral/internal/ui/components"
	"github.com/rmagpantay/aral/internal/ui/layout"
	"github.com/rmagpantay/aral/internal/ui/theme"
)

// ResultsScreen displays a scored assessment attempt.
type ResultsScreen struct {
	result *scoring.Result
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(r *scoring.Result) *ResultsScreen {
	return &ResultsScreen{result: r}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	var b strings.Builder

	// Headline score.
	grade := gradeLine(r.Percentage)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(grade))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%.0f%%", r.Percentage)))
	b.WriteString("\n")

	statsLine := fmt.Sprintf("Correct: %d/%d        Time: %d min        PISA projection: %d",
		r.Score, len(r.Answers), r.DurationMinutes(), r.PISAProjection)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))
	b.WriteString("\n")

	if r.StudentID == scoring.GuestStudentID {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Guest attempt — sign in to keep your history."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Per-skill-area breakdown.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skill areas")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-8, 56)
	for _, area := range sortedSkillAreas(r.SkillBreakdown) {
		ss := r.SkillBreakdown[area]
		bar := components.NewProgressBar(
			fmt.Sprintf("%-22s %d/%d", area, ss.Correct, ss.Total),
			ss.Percentage/100, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	// Study recommendations.
	if len(r.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Focus next on")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, rec := range r.Recommendations {
			line := "  • " + rec
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// gradeLine maps the percentage to the headline message.
func gradeLine(pct float64) string {
	switch {
	case pct == 100:
		return "Perfect score! Galing mo!"
	case pct >= 85:
		return "Excellent work!"
	case pct >= 70:
		return "Great job!"
	case pct >= 50:
		return "Good effort — keep practicing!"
	default:
		return "Kaya mo 'yan — try again!"
	}
}

// sortedSkillAreas returns skill areas in stable display order.
func sortedSkillAreas(m map[string]scoring.SkillScore) []string {
	areas := make([]string, 0, len(m))
	for a := range m {
		areas = append(areas, a)
	}
	sort.Strings(areas)
	return areas
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
