// Package analytics delivers product usage events to a sink.
//
// Every tracker is fire-and-forget: a failing sink must never affect
// scoring or persistence outcomes, so implementations swallow errors.
package analytics

// Event names recorded by the app.
const (
	EventAssessmentStart    = "assessment_start"
	EventAssessmentComplete = "assessment_complete"
	EventLogin              = "login"
	EventSignUp             = "sign_up"
)

// Tracker receives named analytics events.
type Tracker interface {
	// AssessmentStart records that a learner began an assessment.
	AssessmentStart(assessmentID, subject string)

	// AssessmentComplete records a finished attempt with its outcome.
	AssessmentComplete(assessmentID, subject string, percentage float64, durationMinutes int)

	// Login records a successful sign-in.
	Login(method string)

	// SignUp records a successful registration.
	SignUp(method string)
}

// Noop is a Tracker that discards every event.
type Noop struct{}

var _ Tracker = Noop{}

func (Noop) AssessmentStart(string, string)                  {}
func (Noop) AssessmentComplete(string, string, float64, int) {}
func (Noop) Login(string)                                    {}
func (Noop) SignUp(string)                                   {}
