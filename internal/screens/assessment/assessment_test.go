package assessment

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	asmt "github.com/rmagpantay/aral/internal/assessment"
	"github.com/rmagpantay/aral/internal/router"
	"github.com/rmagpantay/aral/internal/screen"
	"github.com/rmagpantay/aral/internal/screens/results"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testScreen starts an attempt of the given assessment with an inert
// countdown so ticks never fire on their own.
func testScreen(t *testing.T, assessmentID string) *AssessmentScreen {
	t.Helper()
	engine := asmt.NewEngine(asmt.Options{TickInterval: time.Hour})
	s := New(engine, assessmentID)
	if cmd := s.Init(); cmd == nil {
		t.Fatal("expected Init to return a command")
	}
	if !s.hasQ {
		t.Fatalf("expected a current question after starting %s", assessmentID)
	}
	return s
}

func TestAssessmentScreen_Title(t *testing.T) {
	s := testScreen(t, "reading-basic")
	if s.Title() != "Basic Reading Assessment" {
		t.Errorf("Title = %q, want %q", s.Title(), "Basic Reading Assessment")
	}
}

func TestAssessmentScreen_StartFailed(t *testing.T) {
	engine := asmt.NewEngine(asmt.Options{TickInterval: time.Hour})
	s := New(engine, "no-such-assessment")

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected Init to return a command")
	}
	var scr screen.Screen = s
	scr, _ = scr.Update(cmd())
	ss := scr.(*AssessmentScreen)
	if ss.errMsg == "" {
		t.Fatal("expected an error message for an unknown assessment")
	}

	// Any key goes back.
	_, cmd = ss.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after keypress in error state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from error state")
	}
}

func TestAssessmentScreen_QuitConfirm(t *testing.T) {
	s := testScreen(t, "reading-basic")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*AssessmentScreen)
	if !ss.confirmQuit {
		t.Error("expected quit confirmation after Esc")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*AssessmentScreen)
	if ss.confirmQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestAssessmentScreen_QuitConfirm_Yes(t *testing.T) {
	s := testScreen(t, "reading-basic")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirming quit")
	}
	if _, _, pct := s.engine.Progress(); pct != 0 {
		t.Error("expected the session to be discarded")
	}
}

func TestAssessmentScreen_NumberKeyAnswers(t *testing.T) {
	s := testScreen(t, "reading-basic")

	// Option 2 of read-001 is the correct "Sa parke".
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*AssessmentScreen)

	sess := ss.engine.Session()
	if sess == nil {
		t.Fatal("expected an active session")
	}
	ans, ok := sess.Answers["read-001"]
	if !ok {
		t.Fatal("expected an answer captured for read-001")
	}
	if ans.Value() != "Sa parke" {
		t.Errorf("answer = %q, want %q", ans.Value(), "Sa parke")
	}

	// Submitting moved to the next question.
	if ss.question.ID != "read-004" {
		t.Errorf("current question = %s, want read-004", ss.question.ID)
	}
}

func TestAssessmentScreen_PrefillOnRetreat(t *testing.T) {
	s := testScreen(t, "reading-basic")

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyLeft))
	ss := scr.(*AssessmentScreen)

	if ss.question.ID != "read-001" {
		t.Fatalf("current question = %s, want read-001", ss.question.ID)
	}
	if ss.selected != 1 {
		t.Errorf("selected = %d, want 1 (prior answer)", ss.selected)
	}
}

func TestAssessmentScreen_LastQuestionOffersFinish(t *testing.T) {
	s := testScreen(t, "reading-basic")

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2')) // read-001
	scr, _ = scr.Update(keyPress('2')) // read-004, last question
	ss := scr.(*AssessmentScreen)

	if !ss.confirmFinish {
		t.Fatal("expected finish confirmation after the last question")
	}

	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after finishing")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg after finishing")
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Error("expected the results screen to replace the runner")
	}
}

func TestAssessmentScreen_MatchingToggle(t *testing.T) {
	s := testScreen(t, "science-basic")

	// Advance past the true/false question to sci-002.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	ss := scr.(*AssessmentScreen)
	if ss.question.ID != "sci-002" {
		t.Fatalf("current question = %s, want sci-002", ss.question.ID)
	}

	// Toggle "Solid", move down, toggle "Liquid", submit.
	scr, _ = ss.Update(keyPress(' '))
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(keyPress(' '))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss = scr.(*AssessmentScreen)

	sess := ss.engine.Session()
	ans, ok := sess.Answers["sci-002"]
	if !ok {
		t.Fatal("expected an answer captured for sci-002")
	}
	if got := ans.Values(); len(got) != 2 || got[0] != "Solid" || got[1] != "Liquid" {
		t.Errorf("answer values = %v, want [Solid Liquid]", got)
	}
}

func TestAssessmentScreen_OpenEndedTyping(t *testing.T) {
	s := testScreen(t, "reading-advanced")

	if s.question.ID != "read-003" {
		t.Fatalf("current question = %s, want read-003", s.question.ID)
	}

	s.input.Model.SetValue("Ang yaman ng kulturang Pilipino")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*AssessmentScreen)

	// Single-question assessment: submitting offers to finish.
	if !ss.confirmFinish {
		t.Error("expected finish confirmation on the only question")
	}
	sess := ss.engine.Session()
	if ans := sess.Answers["read-003"]; ans.Value() != "Ang yaman ng kulturang Pilipino" {
		t.Errorf("answer = %q, want the typed text", ans.Value())
	}
}

func TestAssessmentScreen_KeyHints(t *testing.T) {
	s := testScreen(t, "reading-basic")
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	s.confirmQuit = true
	if len(s.KeyHints()) != 2 {
		t.Error("expected Y/N hints in quit confirmation")
	}
}

func TestAssessmentScreen_View(t *testing.T) {
	s := testScreen(t, "reading-basic")
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}

	s.confirmFinish = true
	if s.View(80, 24) == "" {
		t.Error("expected non-empty confirmation view")
	}
}
