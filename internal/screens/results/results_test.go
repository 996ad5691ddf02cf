package results

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rmagpantay/aral/internal/scoring"
)

func testResult() *scoring.Result {
	start := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	return &scoring.Result{
		ID:           "result-1",
		AssessmentID: "reading-basic",
		StudentID:    "user-001",
		StartTime:    start,
		EndTime:      start.Add(12 * time.Minute),
		Answers: []scoring.GradedAnswer{
			{QuestionID: "read-001", IsCorrect: true},
			{QuestionID: "read-004", IsCorrect: false},
		},
		Score:      1,
		Percentage: 50,
		SkillBreakdown: map[string]scoring.SkillScore{
			"comprehension": {Correct: 1, Total: 2, Percentage: 50},
		},
		Recommendations: []string{"Focus on improving comprehension skills"},
		PISAProjection:  425,
	}
}

func TestResultsScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestResultsScreen_Display(t *testing.T) {
	s := New(testResult())
	if s.View(80, 24) == "" {
		t.Error("expected non-empty results view")
	}
}

func TestResultsScreen_GuestNotice(t *testing.T) {
	r := testResult()
	r.StudentID = scoring.GuestStudentID
	s := New(r)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty guest results view")
	}
}

func TestResultsScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestResultsScreen_Navigation_Esc(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestResultsScreen_KeyHints(t *testing.T) {
	s := New(testResult())
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}

func TestGradeLine(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "Perfect score! Galing mo!"},
		{90, "Excellent work!"},
		{75, "Great job!"},
		{55, "Good effort — keep practicing!"},
		{20, "Kaya mo 'yan — try again!"},
	}
	for _, tc := range cases {
		if got := gradeLine(tc.pct); got != tc.want {
			t.Errorf("gradeLine(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}
