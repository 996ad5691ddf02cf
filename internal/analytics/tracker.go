package analytics

import "context"

// Event is the stored form of a tracked event. Fields beyond Name are
// filled per event kind.
type Event struct {
	Name            string
	UserID          string
	AssessmentID    string
	Subject         string
	Percentage      float64
	DurationMinutes int
	Method          string
}

// Sink appends events to durable storage.
type Sink interface {
	AppendAnalytics(ctx context.Context, ev Event) error
}

// SinkTracker is a Tracker that writes events to a Sink. Append errors
// are dropped: analytics must never affect scoring or persistence.
type SinkTracker struct {
	sink Sink

	// userID resolves the learner to attribute events to; may return
	// empty for guests. Optional.
	userID func() string
}

var _ Tracker = (*SinkTracker)(nil)

// NewSinkTracker creates a tracker over the given sink. userID may be
// nil when attribution is not needed.
func NewSinkTracker(sink Sink, userID func() string) *SinkTracker {
	return &SinkTracker{sink: sink, userID: userID}
}

func (t *SinkTracker) currentUser() string {
	if t.userID == nil {
		return ""
	}
	return t.userID()
}

func (t *SinkTracker) AssessmentStart(assessmentID, subject string) {
	t.append(Event{
		Name:         EventAssessmentStart,
		UserID:       t.currentUser(),
		AssessmentID: assessmentID,
		Subject:      subject,
	})
}

func (t *SinkTracker) AssessmentComplete(assessmentID, subject string, percentage float64, durationMinutes int) {
	t.append(Event{
		Name:            EventAssessmentComplete,
		UserID:          t.currentUser(),
		AssessmentID:    assessmentID,
		Subject:         subject,
		Percentage:      percentage,
		DurationMinutes: durationMinutes,
	})
}

func (t *SinkTracker) Login(method string) {
	t.append(Event{Name: EventLogin, UserID: t.currentUser(), Method: method})
}

func (t *SinkTracker) SignUp(method string) {
	t.append(Event{Name: EventSignUp, UserID: t.currentUser(), Method: method})
}

func (t *SinkTracker) append(ev Event) {
	_ = t.sink.AppendAnalytics(context.Background(), ev)
}
