package assessment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/scoring"
)

// mockTracker records analytics calls for assertions.
type mockTracker struct {
	starts    []string
	completes []string
}

func (m *mockTracker) AssessmentStart(assessmentID, _ string) {
	m.starts = append(m.starts, assessmentID)
}
func (m *mockTracker) AssessmentComplete(assessmentID, _ string, _ float64, _ int) {
	m.completes = append(m.completes, assessmentID)
}
func (m *mockTracker) Login(string)  {}
func (m *mockTracker) SignUp(string) {}

// mockIdentity returns a fixed learner.
type mockIdentity struct {
	id   string
	auth bool
}

func (m *mockIdentity) CurrentUserID() (string, bool) { return m.id, m.auth }

// mockRecorder captures recorded results.
type mockRecorder struct {
	results []scoring.Result
	userIDs []string
	err     error
}

func (m *mockRecorder) RecordResult(_ context.Context, userID string, r scoring.Result) error {
	m.results = append(m.results, r)
	m.userIDs = append(m.userIDs, userID)
	return m.err
}

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.TickInterval == 0 {
		// Keep the real countdown inert; tests drive tick directly.
		opts.TickInterval = time.Hour
	}
	return NewEngine(opts)
}

func mustStart(t *testing.T, e *Engine, id string) {
	t.Helper()
	if err := e.Start(id); err != nil {
		t.Fatalf("Start(%s): %v", id, err)
	}
}

func TestStartUnknownAssessment(t *testing.T) {
	e := newTestEngine(t, Options{})
	err := e.Start("no-such-assessment")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if e.Session() != nil {
		t.Error("no session should start for an unknown assessment")
	}
}

func TestStartInitializesSession(t *testing.T) {
	tracker := &mockTracker{}
	e := newTestEngine(t, Options{Analytics: tracker})
	mustStart(t, e, "math-basic")

	s := e.Session()
	if s == nil {
		t.Fatal("expected active session")
	}
	if s.CurrentQuestionIndex != 0 {
		t.Errorf("index = %d, want 0", s.CurrentQuestionIndex)
	}
	if s.TimeRemaining != 30*60 {
		t.Errorf("TimeRemaining = %d, want %d", s.TimeRemaining, 30*60)
	}
	if len(s.Answers) != 0 || s.Completed {
		t.Errorf("fresh session has answers=%d completed=%v", len(s.Answers), s.Completed)
	}
	if len(tracker.starts) != 1 || tracker.starts[0] != "math-basic" {
		t.Errorf("assessment_start events = %v", tracker.starts)
	}
}

func TestSubmitAnswerLatestWriteWins(t *testing.T) {
	e := newTestEngine(t, Options{})
	mustStart(t, e, "math-basic")

	q, ok := e.CurrentQuestion()
	if !ok {
		t.Fatal("expected current question")
	}
	e.SubmitAnswer(q.ID, scoring.Single("7"))
	e.SubmitAnswer(q.ID, scoring.Single("8"))

	s := e.Session()
	if got := s.Answers[q.ID]; got.Value() != "8" {
		t.Errorf("answer = %q, want latest write %q", got.Value(), "8")
	}
	if len(s.Answers) != 1 {
		t.Errorf("answer count = %d, want 1", len(s.Answers))
	}
}

func TestNavigationClamps(t *testing.T) {
	e := newTestEngine(t, Options{})
	mustStart(t, e, "math-basic")
	a, _ := e.Assessment()
	last := len(a.Questions) - 1

	e.Retreat() // at first question: no-op
	if s := e.Session(); s.CurrentQuestionIndex != 0 {
		t.Errorf("index after retreat at start = %d, want 0", s.CurrentQuestionIndex)
	}

	for range a.Questions {
		e.Advance()
	}
	e.Advance() // past the end: no-op
	if s := e.Session(); s.CurrentQuestionIndex != last {
		t.Errorf("index after over-advance = %d, want %d", s.CurrentQuestionIndex, last)
	}
}

func TestProgress(t *testing.T) {
	e := newTestEngine(t, Options{})

	if cur, total, pct := e.Progress(); cur != 0 || total != 0 || pct != 0 {
		t.Errorf("Progress without session = (%d,%d,%v), want zeros", cur, total, pct)
	}

	mustStart(t, e, "math-basic")
	a, _ := e.Assessment()
	e.Advance()
	cur, total, pct := e.Progress()
	if cur != 2 || total != len(a.Questions) {
		t.Errorf("Progress = (%d,%d), want (2,%d)", cur, total, len(a.Questions))
	}
	want := float64(2) / float64(total) * 100
	if pct != want {
		t.Errorf("percentage = %v, want %v", pct, want)
	}
}

func TestFinishIsTerminal(t *testing.T) {
	tracker := &mockTracker{}
	e := newTestEngine(t, Options{Analytics: tracker})
	mustStart(t, e, "math-basic")

	q, _ := e.CurrentQuestion()
	e.SubmitAnswer(q.ID, scoring.Single("8"))

	r, ok := e.Finish()
	if !ok || r == nil {
		t.Fatal("Finish should produce a result")
	}
	if len(tracker.completes) != 1 {
		t.Errorf("assessment_complete events = %v", tracker.completes)
	}

	// Session is gone; every further operation is a no-op.
	if e.Session() != nil {
		t.Error("session should be discarded after finish")
	}
	e.SubmitAnswer(q.ID, scoring.Single("9"))
	e.Advance()
	if _, ok := e.Finish(); ok {
		t.Error("second Finish should return nothing")
	}
}

func TestFinishWithoutSession(t *testing.T) {
	e := newTestEngine(t, Options{})
	if r, ok := e.Finish(); ok || r != nil {
		t.Error("Finish with no session must return none")
	}
}

func TestGuestResultNotRecorded(t *testing.T) {
	rec := &mockRecorder{}
	e := newTestEngine(t, Options{Recorder: rec, Identity: &mockIdentity{auth: false}})
	mustStart(t, e, "math-basic")

	r, _ := e.Finish()
	if r.StudentID != scoring.GuestStudentID {
		t.Errorf("StudentID = %q, want guest sentinel", r.StudentID)
	}
	if len(rec.results) != 0 {
		t.Error("guest results must not be persisted")
	}
}

func TestAuthenticatedResultRecorded(t *testing.T) {
	rec := &mockRecorder{}
	e := newTestEngine(t, Options{Recorder: rec, Identity: &mockIdentity{id: "user-001", auth: true}})
	mustStart(t, e, "math-basic")

	r, _ := e.Finish()
	if r.StudentID != "user-001" {
		t.Errorf("StudentID = %q, want user-001", r.StudentID)
	}
	if len(rec.results) != 1 || rec.userIDs[0] != "user-001" {
		t.Fatalf("recorded %d results for %v, want 1 for user-001", len(rec.results), rec.userIDs)
	}
}

func TestStorageFailureStillReturnsResult(t *testing.T) {
	rec := &mockRecorder{err: errors.New("disk full")}
	e := newTestEngine(t, Options{Recorder: rec, Identity: &mockIdentity{id: "user-001", auth: true}})
	mustStart(t, e, "math-basic")

	r, ok := e.Finish()
	if !ok || r == nil {
		t.Fatal("result must be returned even when persistence fails")
	}
}

func TestTimerAutoFinishesExactlyOnce(t *testing.T) {
	e := newTestEngine(t, Options{})
	mustStart(t, e, "math-basic")

	e.mu.Lock()
	sess := e.sess
	sess.TimeRemaining = 2
	e.mu.Unlock()

	e.tick(sess)
	if _, ok := e.TakeAutoResult(); ok {
		t.Fatal("finished with time still remaining")
	}
	e.tick(sess)
	r, ok := e.TakeAutoResult()
	if !ok || r == nil {
		t.Fatal("expected auto-finish at zero")
	}
	if _, ok := e.TakeAutoResult(); ok {
		t.Error("auto result must be delivered once")
	}

	// Ticks after completion are inert.
	e.tick(sess)
	if _, ok := e.TakeAutoResult(); ok {
		t.Error("stale tick finished a completed session")
	}
}

func TestStaleTimerCannotTouchSupersededSession(t *testing.T) {
	e := newTestEngine(t, Options{})
	mustStart(t, e, "math-basic")
	e.mu.Lock()
	old := e.sess
	e.mu.Unlock()

	e.Exit()
	mustStart(t, e, "reading-basic")

	before := e.Session().TimeRemaining
	old.TimeRemaining = 1
	e.tick(old) // stale countdown firing against a superseded session
	after := e.Session().TimeRemaining

	if before != after {
		t.Errorf("stale tick mutated the new session: %d -> %d", before, after)
	}
	if _, ok := e.TakeAutoResult(); ok {
		t.Error("stale tick must not finish the new session")
	}
}

func TestTimeRemainingNonIncreasing(t *testing.T) {
	e := newTestEngine(t, Options{})
	mustStart(t, e, "math-basic")
	e.mu.Lock()
	sess := e.sess
	e.mu.Unlock()

	prev := e.Session().TimeRemaining
	for i := 0; i < 5; i++ {
		e.tick(sess)
		cur := e.Session().TimeRemaining
		if cur > prev {
			t.Fatalf("TimeRemaining increased: %d -> %d", prev, cur)
		}
		prev = cur
	}
}
