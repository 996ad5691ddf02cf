package store

import (
	"context"
	"fmt"

	"github.com/rmagpantay/aral/ent"
	"github.com/rmagpantay/aral/ent/resultevent"
)

func (r *eventRepo) AppendResult(ctx context.Context, data ResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResultEvent.Create().
		SetSequence(seqNum).
		SetResultID(data.ResultID).
		SetUserID(data.UserID).
		SetAssessmentID(data.AssessmentID).
		SetSubject(data.Subject).
		SetScore(data.Score).
		SetPercentage(data.Percentage).
		SetPisaProjection(data.PISAProjection).
		SetDurationMinutes(data.DurationMinutes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryResults(ctx context.Context, opts QueryOpts) ([]ResultEventRecord, error) {
	q := r.client.ResultEvent.Query()
	if opts.UserID != "" {
		q = q.Where(resultevent.UserID(opts.UserID))
	}
	if opts.Subject != "" {
		q = q.Where(resultevent.Subject(opts.Subject))
	}
	if opts.After > 0 {
		q = q.Where(resultevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(resultevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(resultevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(resultevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Asc(resultevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query result events: %w", err)
	}

	records := make([]ResultEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, ResultEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ResultEventData: ResultEventData{
				ResultID:        e.ResultID,
				UserID:          e.UserID,
				AssessmentID:    e.AssessmentID,
				Subject:         e.Subject,
				Score:           e.Score,
				Percentage:      e.Percentage,
				PISAProjection:  e.PisaProjection,
				DurationMinutes: e.DurationMinutes,
			},
		})
	}
	return records, nil
}
