package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	asmt "github.com/rmagpantay/aral/internal/assessment"
	"github.com/rmagpantay/aral/internal/identity"
	"github.com/rmagpantay/aral/internal/progress"
	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/screen"
	"github.com/rmagpantay/aral/internal/screens/achievements"
	"github.com/rmagpantay/aral/internal/screens/history"
	"github.com/rmagpantay/aral/internal/screens/library"
	"github.com/rmagpantay/aral/internal/screens/login"
	"github.com/rmagpantay/aral/internal/screens/report"
	"github.com/rmagpantay/aral/internal/screens/tips"
	"github.com/rmagpantay/aral/internal/store"
	"github.com/rmagpantay/aral/internal/tutor"
	"github.com/rmagpantay/aral/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	engine      *asmt.Engine
	ident       *identity.Service
	progressSvc *progress.Service
	tutorSvc    *tutor.Service
	eventRepo   store.EventRepo

	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool

	// Dashboard stats for the signed-in learner.
	learnerID     string
	taken         int
	avgScore      float64
	pisa          int
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(engine *asmt.Engine, ident *identity.Service, progressSvc *progress.Service, tutorSvc *tutor.Service, eventRepo store.EventRepo) *HomeScreen {
	h := &HomeScreen{
		engine:      engine,
		ident:       ident,
		progressSvc: progressSvc,
		tutorSvc:    tutorSvc,
		eventRepo:   eventRepo,
	}
	h.refresh()
	return h
}

// refresh rebuilds the menu and dashboard stats for the current learner.
// Called at construction and whenever the signed-in learner changes.
func (h *HomeScreen) refresh() {
	signedIn := false
	userID := ""
	if h.ident != nil {
		userID, signedIn = h.ident.CurrentUserID()
	}
	h.learnerID = userID

	h.taken = 0
	h.avgScore = 0
	h.pisa = 0
	h.mascotVariant = MascotIdle
	if signedIn && h.progressSvc != nil {
		if p, err := h.progressSvc.Get(context.Background(), userID); err == nil && p != nil {
			h.taken = p.OverallStats.TotalAssessments
			h.avgScore = p.OverallStats.AverageScore
			if len(p.AssessmentResults) > 0 {
				h.pisa = p.AssessmentResults[len(p.AssessmentResults)-1].PISAProjection
			}
			h.mascotVariant = mascotFor(p)
		}
	}

	authLabel := "SIGN IN"
	if signedIn {
		authLabel = "SIGN OUT"
	}
	h.menuLabels = []string{
		"TAKE ASSESSMENT", "MY PROGRESS", "ACHIEVEMENTS",
		"HISTORY", "STUDY TIPS", authLabel, "EXIT",
	}
	h.disabled = map[int]bool{
		1: !signedIn,
		2: !signedIn,
		3: !signedIn,
		4: h.tutorSvc == nil || !signedIn,
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: library.New(h.engine)}
			}
		}},
		{Label: h.menuLabels[1], Disabled: h.disabled[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: report.New(h.ident, h.progressSvc)}
			}
		}},
		{Label: h.menuLabels[2], Disabled: h.disabled[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achievements.New(h.ident, h.progressSvc)}
			}
		}},
		{Label: h.menuLabels[3], Disabled: h.disabled[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.eventRepo, h.ident)}
			}
		}},
		{Label: h.menuLabels[4], Disabled: h.disabled[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tips.New(h.ident, h.progressSvc, h.tutorSvc)}
			}
		}},
		{Label: h.menuLabels[5], Action: func() tea.Cmd {
			if signedIn {
				h.ident.Logout()
				h.refresh()
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: login.New(h.ident)}
			}
		}},
		{Label: h.menuLabels[6], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

// mascotFor picks the mascot mood from the learner's progress.
func mascotFor(p *progress.Progress) MascotVariant {
	if p.OverallStats.BestScore == 100 {
		return MascotCelebrating
	}
	for _, sa := range p.SkillAreas {
		if sa.NeedsImprovement {
			return MascotCheering
		}
	}
	return MascotIdle
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// A login, logout, or recorded attempt elsewhere invalidates the
	// dashboard; rebuild when the signed-in learner changed underneath us.
	if h.ident != nil {
		if id, _ := h.ident.CurrentUserID(); id != h.learnerID {
			h.refresh()
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	signedIn := h.learnerID != ""

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Mascot (full mode only)
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	// 3. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		h.taken, h.avgScore, h.pisa, signedIn, cw, compact))

	// 4. Menu (same width box)
	if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	// 5. Notice when AI features are unavailable.
	if h.tutorSvc == nil {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
