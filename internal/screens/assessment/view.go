package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.confirmQuit {
		return renderConfirm(width,
			"Leave this assessment?",
			"Your answers will be discarded.",
			"[Y] Yes, leave", "[N] No, keep going")
	}
	if s.confirmFinish {
		_, total, _ := s.engine.Progress()
		unanswered := total - s.answeredCount()
		note := "All questions answered."
		if unanswered > 0 {
			note = fmt.Sprintf("%d unanswered — they will count as incorrect.", unanswered)
		}
		return renderConfirm(width,
			"Submit your answers?", note,
			"[Y] Yes, score it", "[N] No, review")
	}
	if !s.hasQ {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing your assessment...")
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question display.
func (s *AssessmentScreen) renderQuestionView(width int) string {
	current, total, _ := s.engine.Progress()

	remaining := s.timeRemaining()
	timerStr := fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if remaining <= 60 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", current, total))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("answered %d  %s %s",
			s.answeredCount(),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("T"),
			timerStyle.Render(timerStr),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	q := s.question

	// Question prompt, wrapped and centered.
	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(q.Prompt)))
	b.WriteString("\n\n")

	if q.CulturalContext != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(q.CulturalContext))
		b.WriteString("\n\n")
	}

	switch q.Type {
	case catalog.TypeOpenEnded:
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)

	case catalog.TypeMatching:
		b.WriteString(s.renderMatching(width))

	default:
		b.WriteString(s.renderChoices(width))
	}

	return b.String()
}

// renderChoices renders single-select options for multiple choice and
// true/false questions.
func (s *AssessmentScreen) renderChoices(width int) string {
	var b strings.Builder
	for i, choice := range s.question.Options {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter")
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderMatching renders the multi-select option list.
func (s *AssessmentScreen) renderMatching(width int) string {
	var b strings.Builder
	for i, choice := range s.question.Options {
		mark := "[ ]"
		if s.chosen[i] {
			mark = "[x]"
		}
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s %s", prefix, mark, choice)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.chosen[i] {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		if i == s.selected {
			style = style.Bold(true).Foreground(theme.Primary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSpace toggles, Enter submits the set")
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderConfirm renders a yes/no dialog.
func renderConfirm(width int, title, note, yes, no string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(note))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render(yes))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render(no))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
