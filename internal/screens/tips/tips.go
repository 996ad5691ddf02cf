package tips

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmagpantay/aral/internal/identity"
	"github.com/rmagpantay/aral/internal/progress"
	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/screen"
	"github.com/rmagpantay/aral/internal/tutor"
	"github.com/rmagpantay/aral/internal/ui/layout"
	"github.com/rmagpantay/aral/internal/ui/theme"
)

const pollInterval = 200 * time.Millisecond

type requestStartedMsg struct {
	Err error
}

type pollMsg time.Time

// TipsScreen requests AI study tips for the signed-in learner and shows
// them once the provider responds.
type TipsScreen struct {
	ident       *identity.Service
	progressSvc *progress.Service
	tutorSvc    *tutor.Service

	tips      *tutor.StudyTips
	waiting   bool
	tickCount int
	errMsg    string
}

var _ screen.Screen = (*TipsScreen)(nil)
var _ screen.KeyHintProvider = (*TipsScreen)(nil)

// New creates a new TipsScreen.
func New(ident *identity.Service, progressSvc *progress.Service, tutorSvc *tutor.Service) *TipsScreen {
	return &TipsScreen{ident: ident, progressSvc: progressSvc, tutorSvc: tutorSvc}
}

func (s *TipsScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			userID, ok := s.ident.CurrentUserID()
			if !ok {
				return requestStartedMsg{Err: fmt.Errorf("sign in to get study tips")}
			}
			p, err := s.progressSvc.Get(context.Background(), userID)
			if err != nil {
				return requestStartedMsg{Err: err}
			}
			if p.OverallStats.TotalAssessments == 0 {
				return requestStartedMsg{Err: tutor.ErrNoHistory}
			}
			s.tutorSvc.RequestTips(context.Background(), p)
			return requestStartedMsg{}
		},
		pollCmd(),
	)
}

func (s *TipsScreen) Title() string {
	return "Study Tips"
}

func (s *TipsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TipsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case requestStartedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, tutor.ErrNoHistory) {
				s.errMsg = "Take an assessment first so the tips have something to build on."
			} else {
				s.errMsg = msg.Err.Error()
			}
			return s, nil
		}
		s.waiting = true
		return s, nil

	case pollMsg:
		s.tickCount++
		if tips, ok := s.tutorSvc.ConsumeTips(); ok {
			s.waiting = false
			if tips == nil {
				s.errMsg = "Could not generate tips right now. Try again later."
			} else {
				s.tips = tips
			}
			return s, nil
		}
		if s.errMsg != "" || s.tips != nil {
			return s, nil
		}
		return s, pollCmd()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *TipsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n  %s", s.errMsg))
	}
	if s.tips == nil {
		dots := strings.Repeat(".", s.tickCount%4)
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n  Thinking about your results%s", dots))
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, tip := range s.tips.Tips {
		header := fmt.Sprintf("%d. %s", i+1,
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(tip.SkillArea))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
		b.WriteString("\n")

		body := lipgloss.NewStyle().
			Width(min(width-12, 64)).
			Foreground(theme.Text).
			Render(tip.Tip)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
		b.WriteString("\n")

		activity := lipgloss.NewStyle().
			Width(min(width-12, 64)).
			Foreground(theme.Secondary).
			Render("Try: " + tip.Activity)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, activity))
		b.WriteString("\n\n")
	}

	if s.tips.Encouragement != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().
				Width(min(width-12, 64)).
				Foreground(theme.Accent).
				Italic(true).
				Render(s.tips.Encouragement)))
		b.WriteString("\n")
	}

	return b.String()
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
