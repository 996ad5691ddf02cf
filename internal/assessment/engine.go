// Package assessment runs one assessment attempt at a time: question
// navigation, answer capture, the countdown timer, and the hand-off to
// scoring on completion.
package assessment

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rmagpantay/aral/internal/analytics"
	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/scoring"
)

// Identity resolves the learner a finished attempt is attributed to.
type Identity interface {
	// CurrentUserID returns the authenticated learner id, or false when
	// the attempt runs as a guest.
	CurrentUserID() (string, bool)
}

// Recorder folds a scored result into the learner's persisted progress.
type Recorder interface {
	RecordResult(ctx context.Context, userID string, result scoring.Result) error
}

// Options configures an Engine. Zero-value collaborators fall back to
// inert defaults so the engine works standalone in tests.
type Options struct {
	Analytics analytics.Tracker
	Identity  Identity
	Recorder  Recorder

	// Clock overrides time.Now for deterministic tests.
	Clock func() time.Time

	// TickInterval overrides the 1-second countdown cadence in tests.
	TickInterval time.Duration
}

// Engine manages the single active session. All methods are safe for
// concurrent use; the countdown goroutine and the UI share it.
type Engine struct {
	mu        sync.Mutex
	analytics analytics.Tracker
	identity  Identity
	recorder  Recorder
	clock     func() time.Time
	interval  time.Duration

	sess       *Session
	assessment *catalog.Assessment
	timer      *countdown

	// autoResult holds the result of a timer-triggered finish until the
	// UI collects it.
	autoResult *scoring.Result
}

// NewEngine creates an Engine with the given collaborators.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		analytics: opts.Analytics,
		identity:  opts.Identity,
		recorder:  opts.Recorder,
		clock:     opts.Clock,
		interval:  opts.TickInterval,
	}
	if e.analytics == nil {
		e.analytics = analytics.Noop{}
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.interval == 0 {
		e.interval = time.Second
	}
	return e
}

// Start begins a new attempt of the given assessment, replacing and
// discarding any session already in flight.
func (e *Engine) Start(assessmentID string) error {
	a, err := catalog.Get(assessmentID)
	if err != nil {
		return fmt.Errorf("start assessment: %w", err)
	}

	e.mu.Lock()
	e.stopTimerLocked()
	now := e.clock()
	sess := &Session{
		ID:              uuid.New().String(),
		AssessmentID:    a.ID,
		Answers:         make(map[string]scoring.Answer),
		TimeSpent:       make(map[string]int),
		StartTime:       now,
		TimeRemaining:   int(a.Duration.Seconds()),
		questionShownAt: now,
	}
	e.sess = sess
	e.assessment = &a
	e.autoResult = nil
	e.timer = startCountdown(e.interval, func() { e.tick(sess) })
	e.mu.Unlock()

	e.analytics.AssessmentStart(a.ID, string(a.Subject))
	return nil
}

// SubmitAnswer captures an answer for the given question. Silent no-op
// without an active session.
func (e *Engine) SubmitAnswer(questionID string, ans scoring.Answer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.sess.Completed {
		return
	}
	e.sess.Answers[questionID] = ans
	e.sess.TimeSpent[questionID] = int(e.clock().Sub(e.sess.questionShownAt).Seconds())
}

// Advance moves to the next question, clamped at the last one.
func (e *Engine) Advance() { e.move(1) }

// Retreat moves to the previous question, clamped at the first one.
func (e *Engine) Retreat() { e.move(-1) }

func (e *Engine) move(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.sess.Completed {
		return
	}
	next := e.sess.CurrentQuestionIndex + delta
	if next < 0 || next >= len(e.assessment.Questions) {
		return
	}
	e.sess.CurrentQuestionIndex = next
	e.sess.questionShownAt = e.clock()
}

// CurrentQuestion returns the question at the navigation position.
func (e *Engine) CurrentQuestion() (catalog.Question, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.sess.Completed {
		return catalog.Question{}, false
	}
	return e.assessment.Questions[e.sess.CurrentQuestionIndex], true
}

// Progress reports the 1-based position within the assessment.
func (e *Engine) Progress() (current, total int, percentage float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.assessment == nil || len(e.assessment.Questions) == 0 {
		return 0, 0, 0
	}
	current = e.sess.CurrentQuestionIndex + 1
	total = len(e.assessment.Questions)
	return current, total, float64(current) / float64(total) * 100
}

// Session returns a copy of the active session, or nil.
func (e *Engine) Session() *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess.clone()
}

// Assessment returns the active assessment definition.
func (e *Engine) Assessment() (catalog.Assessment, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.assessment == nil || e.sess == nil {
		return catalog.Assessment{}, false
	}
	return *e.assessment, true
}

// Finish completes the active session and returns the scored result.
// Returns (nil, false) without an active session. The session is
// discarded; only the Result survives.
func (e *Engine) Finish() (*scoring.Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finishLocked()
}

// TakeAutoResult returns the result of a timer-triggered finish, once.
// The UI polls this to detect time expiry.
func (e *Engine) TakeAutoResult() (*scoring.Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.autoResult == nil {
		return nil, false
	}
	r := e.autoResult
	e.autoResult = nil
	return r, true
}

// Exit abandons the active session without scoring it.
func (e *Engine) Exit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopTimerLocked()
	e.sess = nil
	e.assessment = nil
}

// tick decrements remaining time by one second. The session pointer is
// captured at timer creation so a stale countdown can never act on a
// superseded session.
func (e *Engine) tick(sess *Session) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess != sess || sess.Completed {
		return
	}
	if e.sess.TimeRemaining > 0 {
		e.sess.TimeRemaining--
	}
	if e.sess.TimeRemaining == 0 {
		if r, ok := e.finishLocked(); ok {
			e.autoResult = r
		}
	}
}

// finishLocked scores the session, emits analytics, persists progress for
// authenticated learners, and tears the session down. Callers hold e.mu.
func (e *Engine) finishLocked() (*scoring.Result, bool) {
	if e.sess == nil || e.sess.Completed {
		return nil, false
	}
	e.sess.Completed = true
	e.stopTimerLocked()

	a := *e.assessment
	sub := scoring.Submission{
		StartTime: e.sess.StartTime,
		EndTime:   e.clock(),
		Answers:   e.sess.Answers,
		TimeSpent: e.sess.TimeSpent,
	}

	userID, authenticated := "", false
	if e.identity != nil {
		userID, authenticated = e.identity.CurrentUserID()
	}
	if authenticated {
		sub.StudentID = userID
	}

	result := scoring.Score(a, sub)

	e.analytics.AssessmentComplete(a.ID, string(a.Subject), result.Percentage, result.DurationMinutes())

	// Guests see their score but leave no history. A storage failure
	// loses this attempt's progress, never the result itself.
	if authenticated && e.recorder != nil {
		if err := e.recorder.RecordResult(context.Background(), userID, result); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: progress not saved:", err)
		}
	}

	e.sess = nil
	e.assessment = nil
	return &result, true
}

// stopTimerLocked disposes the countdown synchronously. Callers hold e.mu.
func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}
