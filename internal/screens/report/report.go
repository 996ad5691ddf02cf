package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/identity"
	"github.com/rmagpantay/aral/internal/progress"
	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/screen"
	"github.com/rmagpantay/aral/internal/ui/components"
	"github.com/rmagpantay/aral/internal/ui/layout"
	"github.com/rmagpantay/aral/internal/ui/theme"
)

type progressLoadedMsg struct {
	Progress *progress.Progress
	Err      error
}

// ReportScreen displays the signed-in learner's aggregated progress.
type ReportScreen struct {
	ident       *identity.Service
	progressSvc *progress.Service

	prog   *progress.Progress
	loaded bool
	errMsg string
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a new ReportScreen.
func New(ident *identity.Service, progressSvc *progress.Service) *ReportScreen {
	return &ReportScreen{ident: ident, progressSvc: progressSvc}
}

func (s *ReportScreen) Init() tea.Cmd {
	return func() tea.Msg {
		userID, ok := s.ident.CurrentUserID()
		if !ok {
			return progressLoadedMsg{Err: fmt.Errorf("sign in to see your progress")}
		}
		p, err := s.progressSvc.Get(context.Background(), userID)
		return progressLoadedMsg{Progress: p, Err: err}
	}
}

func (s *ReportScreen) Title() string {
	return "My Progress"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.prog = msg.Progress
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}
	if s.prog == nil || s.prog.OverallStats.TotalAssessments == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments yet. Take one to see your progress!")
	}

	p := s.prog
	var b strings.Builder
	b.WriteString("\n")

	// Overall stats card.
	overall := fmt.Sprintf(
		"%s\n\nAssessments: %d    Average: %.0f%%    Best: %.0f%%\nTime spent: %d min    Strongest: %s    Weakest: %s",
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("OVERALL"),
		p.OverallStats.TotalAssessments,
		p.OverallStats.AverageScore,
		p.OverallStats.BestScore,
		p.OverallStats.TotalTimeSpentMinutes,
		subjectLabel(p.OverallStats.StrongestSubject),
		subjectLabel(p.OverallStats.WeakestSubject),
	)
	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeCard(overall, cw)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Per-subject stats in fixed display order.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Subjects")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, subj := range catalog.AllSubjects() {
		ss, ok := p.SubjectProgress[subj]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %-14s %2d taken   avg %3.0f%%   latest %3.0f%%   %s",
			subjectLabel(subj), ss.AssessmentCount, ss.AverageScore, ss.LatestScore,
			trendLabel(ss.Trend))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	// Skill areas, weakest first.
	if len(p.SkillAreas) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skill areas")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		barWidth := min(width-8, 56)
		for _, area := range sortedByAverage(p.SkillAreas) {
			sa := p.SkillAreas[area]
			label := fmt.Sprintf("%-22s", area)
			bar := components.NewProgressBar(label, sa.AverageScore/100, true, barWidth)
			line := bar.View()
			if sa.NeedsImprovement {
				line += lipgloss.NewStyle().Foreground(theme.Accent).Render("  ▲ practice")
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// subjectLabel renders a subject for display, with a dash for none.
func subjectLabel(s catalog.Subject) string {
	if s == "" {
		return "—"
	}
	return string(s)
}

// trendLabel renders the trend with a direction marker.
func trendLabel(t progress.Trend) string {
	switch t {
	case progress.TrendImproving:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("↑ improving")
	case progress.TrendDeclining:
		return lipgloss.NewStyle().Foreground(theme.Error).Render("↓ declining")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("→ stable")
	}
}

// sortedByAverage returns skill areas ordered weakest first, name as
// tie-break so the listing is deterministic.
func sortedByAverage(m map[string]progress.SkillAreaStats) []string {
	areas := make([]string, 0, len(m))
	for a := range m {
		areas = append(areas, a)
	}
	sort.Slice(areas, func(i, j int) bool {
		ai, aj := m[areas[i]], m[areas[j]]
		if ai.AverageScore != aj.AverageScore {
			return ai.AverageScore < aj.AverageScore
		}
		return areas[i] < areas[j]
	})
	return areas
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
