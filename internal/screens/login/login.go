package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmagpantay/aral/internal/identity"
	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/screen"
	"github.com/rmagpantay/aral/internal/ui/components"
	"github.com/rmagpantay/aral/internal/ui/layout"
	"github.com/rmagpantay/aral/internal/ui/theme"
)

type loginResultMsg struct {
	User *identity.User
	Err  error
}

// LoginScreen signs a learner in with email and password.
type LoginScreen struct {
	ident *identity.Service

	email    components.TextInput
	password components.TextInput
	focused  int // 0 = email, 1 = password

	submitting bool
	errMsg     string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a new LoginScreen.
func New(ident *identity.Service) *LoginScreen {
	email := components.NewTextInput("you@email.com", false, 64)
	password := components.NewTextInput("password", false, 64)
	password.Model.EchoMode = textinput.EchoPassword
	password.Model.Blur()

	return &LoginScreen{
		ident:    ident,
		email:    email,
		password: password,
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.email.Init()
}

func (s *LoginScreen) Title() string {
	return "Sign In"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		s.submitting = false
		if msg.Err != nil {
			if errors.Is(msg.Err, identity.ErrInvalidCredentials) {
				s.errMsg = "Email or password is incorrect."
			} else {
				s.errMsg = msg.Err.Error()
			}
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "shift+tab", "up", "down":
			s.toggleFocus()
			return s, nil
		case "enter":
			if s.focused == 0 {
				s.toggleFocus()
				return s, nil
			}
			return s.submit()
		}
	}

	if s.submitting {
		return s, nil
	}

	var cmd tea.Cmd
	if s.focused == 0 {
		s.email, cmd = s.email.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) toggleFocus() {
	if s.focused == 0 {
		s.focused = 1
		s.email.Model.Blur()
		s.password.Model.Focus()
	} else {
		s.focused = 0
		s.password.Model.Blur()
		s.email.Model.Focus()
	}
}

func (s *LoginScreen) submit() (screen.Screen, tea.Cmd) {
	email := strings.TrimSpace(s.email.Value())
	password := s.password.Value()
	if email == "" || password == "" {
		s.errMsg = "Enter both email and password."
		return s, nil
	}

	s.submitting = true
	s.errMsg = ""
	return s, func() tea.Msg {
		user, err := s.ident.Login(context.Background(), email, password)
		return loginResultMsg{User: user, Err: err}
	}
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Sign in to save your progress"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		s.renderField("Email   ", s.email.View(), s.focused == 0)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		s.renderField("Password", s.password.View(), s.focused == 1)))
	b.WriteString("\n\n")

	switch {
	case s.submitting:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Signing in..."))
	case s.errMsg != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(fmt.Sprintf("Demo account: %s / %s", "maria.santos@email.com", "student2024")))

	return b.String()
}

func (s *LoginScreen) renderField(label, input string, focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return labelStyle.Render(label) + "  " + input
}
