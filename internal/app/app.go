package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	asmt "github.com/rmagpantay/aral/internal/assessment"
	"github.com/rmagpantay/aral/internal/identity"
	"github.com/rmagpantay/aral/internal/progress"
	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/screen"
	"github.com/rmagpantay/aral/internal/screens/home"
	"github.com/rmagpantay/aral/internal/screens/welcome"
	"github.com/rmagpantay/aral/internal/store"
	"github.com/rmagpantay/aral/internal/tutor"
	"github.com/rmagpantay/aral/internal/ui/layout"
)

// Options carries the services the TUI is wired with. Tutor is nil when
// no LLM provider is configured; the home screen degrades gracefully.
type Options struct {
	Engine    *asmt.Engine
	Identity  *identity.Service
	Progress  *progress.Service
	Tutor     *tutor.Service
	EventRepo store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ident  *identity.Service
	width  int
	height int
}

// newAppModel creates a new AppModel opening on the welcome splash.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Engine, opts.Identity, opts.Progress, opts.Tutor, opts.EventRepo)
	}
	return AppModel{
		router: router.New(welcome.New(homeFactory)),
		ident:  opts.Identity,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is screen-local: confirmations and input fields decide
		// whether it pops. Only ctrl+c is global.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	learner := ""
	if m.ident != nil {
		if u, ok := m.ident.CurrentUser(); ok {
			learner = u.FirstName
		}
	}

	header := layout.RenderHeader(title, learner, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok && provider.KeyHints() != nil {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
