package assessment

import (
	"time"

	"github.com/rmagpantay/aral/internal/scoring"
)

// Session is the runtime state of one assessment attempt. It is owned
// exclusively by the Engine and mutated only through Engine operations.
//
// Lifecycle: NotStarted → Active → Completed. Forward transitions only;
// a completed session cannot be resumed. Active self-loops on navigation
// and answer capture.
type Session struct {
	// ID is the UUID for this attempt.
	ID string

	// AssessmentID references the catalog assessment being taken.
	AssessmentID string

	// CurrentQuestionIndex is the 0-based navigation position.
	// Invariant: 0 <= index < len(questions) while active.
	CurrentQuestionIndex int

	// Answers maps question id to the latest captured answer.
	// At most one answer per question; latest write wins.
	Answers map[string]scoring.Answer

	// TimeSpent maps question id to seconds spent before the latest
	// answer was captured.
	TimeSpent map[string]int

	// StartTime is when the attempt began.
	StartTime time.Time

	// TimeRemaining counts down in whole seconds. Monotonically
	// non-increasing while the session is active.
	TimeRemaining int

	// Completed is terminal: once true, every mutating operation on the
	// session is a no-op.
	Completed bool

	// questionShownAt tracks when the current question was displayed,
	// for per-question time accounting.
	questionShownAt time.Time
}

// clone returns a shallow copy with copied maps, safe to hand out while
// the engine keeps mutating the original.
func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Answers = make(map[string]scoring.Answer, len(s.Answers))
	for k, v := range s.Answers {
		cp.Answers[k] = v
	}
	cp.TimeSpent = make(map[string]int, len(s.TimeSpent))
	for k, v := range s.TimeSpent {
		cp.TimeSpent[k] = v
	}
	return &cp
}
