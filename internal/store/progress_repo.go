package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rmagpantay/aral/ent"
	"github.com/rmagpantay/aral/ent/progressrecord"
	"github.com/rmagpantay/aral/internal/progress"
)

// progressRepo implements progress.Repo using the ent client. Records
// round-trip through JSON so time fields persist as RFC 3339 strings.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context, userID string) (*progress.Progress, error) {
	rec, err := r.client.ProgressRecord.Query().
		Where(progressrecord.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress record: %w", err)
	}

	b, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", progress.ErrMalformed, err)
	}
	var p progress.Progress
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", progress.ErrMalformed, err)
	}
	return &p, nil
}

func (r *progressRepo) Save(ctx context.Context, userID string, p *progress.Progress) error {
	data, err := progressToMap(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	n, err := r.client.ProgressRecord.Update().
		Where(progressrecord.UserID(userID)).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress record: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.ProgressRecord.Create().
		SetUserID(userID).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create progress record: %w", err)
	}
	return nil
}

// progressToMap converts a Progress to map[string]any for ent JSON storage.
func progressToMap(p *progress.Progress) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
