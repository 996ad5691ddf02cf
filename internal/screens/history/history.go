package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/rmagpantay/aral/internal/identity"
	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/screen"
	"github.com/rmagpantay/aral/internal/store"
	"github.com/rmagpantay/aral/internal/ui/layout"
	"github.com/rmagpantay/aral/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.ResultEventRecord
	Err      error
}

// HistoryScreen displays the learner's past assessment attempts.
type HistoryScreen struct {
	eventRepo store.EventRepo
	ident     *identity.Service

	attempts []store.ResultEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo, ident *identity.Service) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		ident:     ident,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		userID, ok := s.ident.CurrentUserID()
		if !ok {
			return historyLoadedMsg{Err: fmt.Errorf("sign in to see your history")}
		}

		attempts, err := s.eventRepo.QueryResults(context.Background(), store.QueryOpts{
			UserID: userID,
			Limit:  50,
		})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Events arrive in ascending sequence order; show newest first.
		for i, j := 0, len(attempts)-1; i < j; i, j = i+1, j-1 {
			attempts[i], attempts[j] = attempts[j], attempts[i]
		}
		return historyLoadedMsg{Attempts: attempts}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take an assessment!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, att := range s.attempts {
		dateStr := att.Timestamp.Format("Jan 02, 2006")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-12s  %3.0f%%  %d min",
			prefix, dateStr, att.Subject, att.Percentage, att.DurationMinutes)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Show expanded attempt details.
		if s.expanded[i] {
			detail := fmt.Sprintf("    %s  ·  %d correct  ·  PISA projection %d",
				att.AssessmentID, att.Score, att.PISAProjection)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
