package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
)

// jsonRepo persists records as JSON blobs, exercising the same encoding
// the real store uses.
type jsonRepo struct {
	mu      sync.Mutex
	records map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newJSONRepo() *jsonRepo {
	return &jsonRepo{records: make(map[string][]byte)}
}

func (r *jsonRepo) Load(_ context.Context, userID string) (*Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	data, ok := r.records[userID]
	if !ok {
		return nil, nil
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &p, nil
}

func (r *jsonRepo) Save(_ context.Context, userID string, p *Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	r.records[userID] = data
	r.saves++
	return nil
}

func TestServiceRecordThenGet(t *testing.T) {
	svc := NewService(newJSONRepo())
	ctx := context.Background()

	if err := svc.RecordResult(ctx, "user-042", result("math-basic", 80)); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	p, err := svc.Get(ctx, "user-042")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.OverallStats.TotalAssessments != 1 {
		t.Errorf("TotalAssessments = %d, want 1", p.OverallStats.TotalAssessments)
	}
	if !p.HasAchievement(AchievementFirstAssessment) {
		t.Error("first_assessment missing after recorded result")
	}
}

func TestServiceGetWithoutHistory(t *testing.T) {
	svc := NewService(newJSONRepo())
	p, err := svc.Get(context.Background(), "user-002")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.UserID != "user-002" || p.OverallStats.TotalAssessments != 0 {
		t.Errorf("fresh progress = %+v", p)
	}
}

func TestServiceSeedsDemoHistory(t *testing.T) {
	repo := newJSONRepo()
	svc := NewService(repo)
	ctx := context.Background()

	// The demo account starts with sample history; nothing is persisted
	// until the learner records a real attempt.
	p, err := svc.Get(ctx, "user-001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.OverallStats.TotalAssessments != 3 {
		t.Errorf("TotalAssessments = %d, want 3 (seeded history)", p.OverallStats.TotalAssessments)
	}
	if !p.HasAchievement(AchievementFirstAssessment) {
		t.Error("seeded history should have earned first_assessment")
	}
	if repo.saves != 0 {
		t.Errorf("saves = %d, want 0 (seed is not persisted by Get)", repo.saves)
	}

	// A recorded attempt folds into the seeded history.
	if err := svc.RecordResult(ctx, "user-001", result("math-basic", 100)); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	p, err = svc.Get(ctx, "user-001")
	if err != nil {
		t.Fatalf("Get after record: %v", err)
	}
	if p.OverallStats.TotalAssessments != 4 {
		t.Errorf("TotalAssessments = %d, want 4", p.OverallStats.TotalAssessments)
	}
}

func TestServiceMalformedRecordStartsFresh(t *testing.T) {
	repo := newJSONRepo()
	repo.records["user-042"] = []byte("{not json")

	svc := NewService(repo)
	p, err := svc.Get(context.Background(), "user-042")
	if err != nil {
		t.Fatalf("Get over malformed record: %v", err)
	}
	if p.OverallStats.TotalAssessments != 0 {
		t.Error("malformed record should fall back to fresh progress")
	}

	// Recording over the malformed record replaces it cleanly.
	if err := svc.RecordResult(context.Background(), "user-042", result("math-basic", 70)); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	p, err = svc.Get(context.Background(), "user-042")
	if err != nil || p.OverallStats.TotalAssessments != 1 {
		t.Errorf("after replace: err=%v total=%d", err, p.OverallStats.TotalAssessments)
	}
}

func TestServiceLoadFailureSurfaces(t *testing.T) {
	repo := newJSONRepo()
	repo.loadErr = errors.New("db locked")
	svc := NewService(repo)

	if _, err := svc.Get(context.Background(), "user-042"); err == nil {
		t.Error("expected load error to surface")
	}
	if err := svc.RecordResult(context.Background(), "user-042", result("math-basic", 70)); err == nil {
		t.Error("expected record to surface the load error")
	}
}

func TestServiceSaveFailureDoesNotCorruptStore(t *testing.T) {
	repo := newJSONRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.RecordResult(ctx, "user-042", result("math-basic", 70)); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	repo.saveErr = errors.New("disk full")
	if err := svc.RecordResult(ctx, "user-042", result("math-basic", 90)); err == nil {
		t.Fatal("expected save error to surface")
	}

	repo.saveErr = nil
	p, err := svc.Get(ctx, "user-042")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.OverallStats.TotalAssessments != 1 {
		t.Errorf("TotalAssessments = %d, want 1 (failed attempt lost, store intact)", p.OverallStats.TotalAssessments)
	}
}

func TestServiceSerializesConcurrentRecords(t *testing.T) {
	repo := newJSONRepo()
	svc := NewService(repo)
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(pct float64) {
			defer wg.Done()
			if err := svc.RecordResult(ctx, "user-042", result("math-basic", pct)); err != nil {
				t.Errorf("RecordResult: %v", err)
			}
		}(float64(i))
	}
	wg.Wait()

	p, err := svc.Get(ctx, "user-042")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.OverallStats.TotalAssessments != attempts {
		t.Errorf("TotalAssessments = %d, want %d (no lost updates)", p.OverallStats.TotalAssessments, attempts)
	}
}
