package assessment

import (
	"time"

	tea "charm.land/bubbletea/v2"

	asmt "github.com/rmagpantay/aral/internal/assessment"
	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/scoring"
	"github.com/rmagpantay/aral/internal/screen"
	"github.com/rmagpantay/aral/internal/screens/results"
	"github.com/rmagpantay/aral/internal/ui/components"
	"github.com/rmagpantay/aral/internal/ui/layout"
)

// AssessmentScreen drives one attempt through the engine: question
// display, answer capture, navigation, and the countdown.
type AssessmentScreen struct {
	engine       *asmt.Engine
	assessmentID string

	question catalog.Question
	qIndex   int
	hasQ     bool

	// Per-question input state, rebuilt on navigation.
	selected int
	chosen   map[int]bool
	input    components.TextInput

	confirmQuit   bool
	confirmFinish bool
	errMsg        string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates a screen that will start the given assessment on Init.
func New(engine *asmt.Engine, assessmentID string) *AssessmentScreen {
	return &AssessmentScreen{
		engine:       engine,
		assessmentID: assessmentID,
		input:        components.NewTextInput("Type your answer...", false, 120),
	}
}

func (s *AssessmentScreen) Init() tea.Cmd {
	if err := s.engine.Start(s.assessmentID); err != nil {
		return func() tea.Msg { return startFailedMsg{Err: err} }
	}
	s.syncQuestion()
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *AssessmentScreen) Title() string {
	if a, ok := s.engine.Assessment(); ok {
		return a.Title
	}
	return "Assessment"
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Stay"},
		}
	}
	if s.confirmFinish {
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish"},
			{Key: "N", Description: "Review answers"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "Enter", Description: "Answer"},
	}
	if s.hasQ && s.question.Type == catalog.TypeMatching {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	return append(hints,
		layout.KeyHint{Key: "F", Description: "Finish"},
		layout.KeyHint{Key: "Esc", Description: "Leave"},
	)
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startFailedMsg:
		s.errMsg = msg.Err.Error()
		return s, nil

	case tickMsg:
		// A timer expiry finishes the attempt inside the engine; the
		// result surfaces here on the next tick.
		if r, ok := s.engine.TakeAutoResult(); ok {
			return s, showResult(r)
		}
		if s.errMsg != "" {
			return s, nil
		}
		return s, tickCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.editingText() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.engine.Exit()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.confirmFinish {
		switch key {
		case "y", "Y", "enter":
			return s.finish()
		case "n", "N", "esc":
			s.confirmFinish = false
		}
		return s, nil
	}

	if !s.hasQ {
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "left":
		s.engine.Retreat()
		s.syncQuestion()
		return s, nil
	case "right":
		s.engine.Advance()
		s.syncQuestion()
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	switch s.question.Type {
	case catalog.TypeOpenEnded:
		// "f" and navigation letters belong to the answer text here.
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case catalog.TypeMatching:
		switch key {
		case "f", "F":
			s.confirmFinish = true
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.question.Options)-1 {
				s.selected++
			}
		case "space", " ":
			s.chosen[s.selected] = !s.chosen[s.selected]
		}
		return s, nil

	default: // multiple choice and true/false
		switch key {
		case "f", "F":
			s.confirmFinish = true
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.question.Options)-1 {
				s.selected++
			}
		case "1", "2", "3", "4":
			i := int(key[0] - '1')
			if i < len(s.question.Options) {
				s.selected = i
				return s.submitAnswer()
			}
		}
		return s, nil
	}
}

// submitAnswer records the current input with the engine and moves on.
func (s *AssessmentScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	switch s.question.Type {
	case catalog.TypeOpenEnded:
		if v := s.input.Value(); v != "" {
			s.engine.SubmitAnswer(s.question.ID, scoring.Single(v))
		}

	case catalog.TypeMatching:
		var values []string
		for i, opt := range s.question.Options {
			if s.chosen[i] {
				values = append(values, opt)
			}
		}
		if len(values) > 0 {
			s.engine.SubmitAnswer(s.question.ID, scoring.Multi(values...))
		}

	default:
		if s.selected >= 0 && s.selected < len(s.question.Options) {
			s.engine.SubmitAnswer(s.question.ID, scoring.Single(s.question.Options[s.selected]))
		}
	}

	// Last question: offer to finish instead of walking off the end.
	current, total, _ := s.engine.Progress()
	if current == total {
		s.confirmFinish = true
		return s, nil
	}
	s.engine.Advance()
	s.syncQuestion()
	return s, nil
}

func (s *AssessmentScreen) finish() (screen.Screen, tea.Cmd) {
	r, ok := s.engine.Finish()
	if !ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, showResult(r)
}

// syncQuestion refreshes the cached question and rebuilds the input
// widgets, prefilled from any answer already captured.
func (s *AssessmentScreen) syncQuestion() {
	q, ok := s.engine.CurrentQuestion()
	s.question = q
	s.hasQ = ok
	if !ok {
		return
	}

	idx, _, _ := s.engine.Progress()
	s.qIndex = idx

	s.selected = 0
	s.chosen = make(map[int]bool)
	s.input = components.NewTextInput("Type your answer...", false, 120)

	sess := s.engine.Session()
	if sess == nil {
		return
	}
	prior, answered := sess.Answers[q.ID]
	if !answered {
		return
	}

	switch q.Type {
	case catalog.TypeOpenEnded:
		s.input.Model.SetValue(prior.Value())
	case catalog.TypeMatching:
		for i, opt := range q.Options {
			for _, v := range prior.Values() {
				if v == opt {
					s.chosen[i] = true
				}
			}
		}
	default:
		for i, opt := range q.Options {
			if opt == prior.Value() {
				s.selected = i
			}
		}
	}
}

// answeredCount reports how many questions have a captured answer.
func (s *AssessmentScreen) answeredCount() int {
	sess := s.engine.Session()
	if sess == nil {
		return 0
	}
	return len(sess.Answers)
}

// timeRemaining returns the countdown in whole seconds.
func (s *AssessmentScreen) timeRemaining() int {
	sess := s.engine.Session()
	if sess == nil {
		return 0
	}
	return sess.TimeRemaining
}

// editingText reports whether free-form typing goes to the text input.
func (s *AssessmentScreen) editingText() bool {
	return s.hasQ && !s.confirmQuit && !s.confirmFinish &&
		s.question.Type == catalog.TypeOpenEnded
}

func showResult(r *scoring.Result) tea.Cmd {
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(r)}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
