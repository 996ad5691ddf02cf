package analytics

import (
	"context"
	"errors"
	"testing"
)

type captureSink struct {
	events []Event
	err    error
}

func (s *captureSink) AppendAnalytics(_ context.Context, ev Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

func TestSinkTrackerRecordsEvents(t *testing.T) {
	sink := &captureSink{}
	tr := NewSinkTracker(sink, func() string { return "user-001" })

	tr.AssessmentStart("math-basic", "mathematics")
	tr.AssessmentComplete("math-basic", "mathematics", 80, 12)
	tr.Login("password")
	tr.SignUp("password")

	if len(sink.events) != 4 {
		t.Fatalf("events = %d, want 4", len(sink.events))
	}
	if sink.events[0].Name != EventAssessmentStart || sink.events[0].AssessmentID != "math-basic" {
		t.Errorf("start event = %+v", sink.events[0])
	}
	if sink.events[1].Percentage != 80 || sink.events[1].DurationMinutes != 12 {
		t.Errorf("complete event = %+v", sink.events[1])
	}
	if sink.events[2].Method != "password" {
		t.Errorf("login event = %+v", sink.events[2])
	}
	for _, ev := range sink.events {
		if ev.UserID != "user-001" {
			t.Errorf("event %s attributed to %q", ev.Name, ev.UserID)
		}
	}
}

func TestSinkTrackerSwallowsErrors(t *testing.T) {
	sink := &captureSink{err: errors.New("db closed")}
	tr := NewSinkTracker(sink, nil)

	// Must not panic or surface the failure.
	tr.AssessmentStart("math-basic", "mathematics")
	tr.Login("password")
}
