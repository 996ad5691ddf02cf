package store

import (
	"context"
	"fmt"

	"github.com/rmagpantay/aral/internal/analytics"
)

func (r *eventRepo) AppendAnalytics(ctx context.Context, ev analytics.Event) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnalyticsEvent.Create().
		SetSequence(seqNum).
		SetName(ev.Name).
		SetUserID(ev.UserID).
		SetAssessmentID(ev.AssessmentID).
		SetSubject(ev.Subject).
		SetPercentage(ev.Percentage).
		SetDurationMinutes(ev.DurationMinutes).
		SetMethod(ev.Method).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save analytics event: %w", err)
	}
	return nil
}
