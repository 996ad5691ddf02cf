package progress

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rmagpantay/aral/internal/scoring"
)

// ErrMalformed marks a stored Progress that failed to deserialize.
// Repo implementations wrap it so the service can recover by starting
// the learner over with a fresh record.
var ErrMalformed = errors.New("malformed stored progress")

// Repo loads and saves one Progress record per learner.
type Repo interface {
	// Load returns the learner's record, or (nil, nil) when none exists.
	Load(ctx context.Context, userID string) (*Progress, error)

	// Save stores the record wholesale, replacing any previous value.
	Save(ctx context.Context, userID string, p *Progress) error
}

// Service folds scored results into persisted progress. Read-modify-write
// cycles are serialized per learner so interleaved RecordResult calls
// cannot lose updates.
type Service struct {
	repo  Repo
	clock func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a Service over the given repository.
func NewService(repo Repo) *Service {
	return &Service{
		repo:  repo,
		clock: time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Service) learnerLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// RecordResult loads the learner's progress, folds in the result, and
// saves the updated record. A save failure loses this attempt's
// progress but never corrupts the stored record.
func (s *Service) RecordResult(ctx context.Context, userID string, result scoring.Result) error {
	l := s.learnerLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	p.Record(result, s.clock())

	if err := s.repo.Save(ctx, userID, p); err != nil {
		return fmt.Errorf("save progress for %s: %w", userID, err)
	}
	return nil
}

// Get returns the learner's current progress, a fresh record if none is
// stored yet.
func (s *Service) Get(ctx context.Context, userID string) (*Progress, error) {
	l := s.learnerLock(userID)
	l.Lock()
	defer l.Unlock()
	return s.load(ctx, userID)
}

// load fetches the stored record. Malformed data falls back to a fresh
// Progress with a warning rather than failing the learner's attempt.
func (s *Service) load(ctx context.Context, userID string) (*Progress, error) {
	p, err := s.repo.Load(ctx, userID)
	switch {
	case errors.Is(err, ErrMalformed):
		fmt.Fprintln(os.Stderr, "Warning: stored progress unreadable, starting fresh:", err)
		return New(userID), nil
	case err != nil:
		return nil, fmt.Errorf("load progress for %s: %w", userID, err)
	case p == nil:
		return seededProgress(userID), nil
	}
	return p, nil
}
