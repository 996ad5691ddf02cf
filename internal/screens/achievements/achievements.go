package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/identity"
	"github.com/rmagpantay/aral/internal/progress"
	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/screen"
	"github.com/rmagpantay/aral/internal/ui/layout"
	"github.com/rmagpantay/aral/internal/ui/theme"
)

type achievementsLoadedMsg struct {
	Progress *progress.Progress
	Err      error
}

// lockedHint describes a badge the learner has not earned yet.
type lockedHint struct {
	ID   string
	Hint string
}

// AchievementsScreen lists earned badges and what is still locked.
type AchievementsScreen struct {
	ident       *identity.Service
	progressSvc *progress.Service

	prog   *progress.Progress
	loaded bool
	errMsg string
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(ident *identity.Service, progressSvc *progress.Service) *AchievementsScreen {
	return &AchievementsScreen{ident: ident, progressSvc: progressSvc}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		userID, ok := s.ident.CurrentUserID()
		if !ok {
			return achievementsLoadedMsg{Err: fmt.Errorf("sign in to see your achievements")}
		}
		p, err := s.progressSvc.Get(context.Background(), userID)
		return achievementsLoadedMsg{Progress: p, Err: err}
	}
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case achievementsLoadedMsg:
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

func (s *AchievementsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading achievements...")
	}

	var b strings.Builder
	b.WriteString("\n")

	earned := 0
	if s.prog != nil {
		earned = len(s.prog.Achievements)
	}

	if earned == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n  No badges yet. Complete an assessment to earn your first!"))
		b.WriteString("\n")
	} else {
		for _, a := range s.prog.Achievements {
			line := fmt.Sprintf("  %s  %s — %s",
				a.Icon,
				lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(a.Title),
				a.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).
					Render(fmt.Sprintf("      earned %s", a.EarnedAt.Format("Jan 02, 2006")))))
			b.WriteString("\n\n")
		}
	}

	// Locked badges with a hint at how to earn them.
	locked := s.lockedHints()
	if len(locked) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Still locked")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, l := range locked {
			line := "  🔒 " + l.Hint
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// lockedHints lists every badge the learner has not earned yet.
func (s *AchievementsScreen) lockedHints() []lockedHint {
	all := []lockedHint{
		{progress.AchievementFirstAssessment, "Complete your first assessment"},
		{progress.AchievementPerfectScore, "Score 100% on an assessment"},
		{progress.AchievementConsistentPerformer, "Average 80%+ across 5 assessments"},
	}
	for _, subj := range catalog.AllSubjects() {
		all = append(all, lockedHint{
			ID:   progress.MasteryAchievementID(subj),
			Hint: fmt.Sprintf("Average 85%%+ across 3 %s assessments", subj),
		})
	}

	var locked []lockedHint
	for _, l := range all {
		if s.prog == nil || !s.prog.HasAchievement(l.ID) {
			locked = append(locked, l)
		}
	}
	return locked
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
