package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rmagpantay/aral/internal/analytics"
	"github.com/rmagpantay/aral/internal/progress"
	"github.com/rmagpantay/aral/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func testProgress(userID string) *progress.Progress {
	p := progress.New(userID)
	start := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	r := scoring.Result{
		ID:           "result-001",
		AssessmentID: "math-basic",
		StudentID:    userID,
		StartTime:    start,
		EndTime:      start.Add(12 * time.Minute),
		Score:        4,
		Percentage:   80,
		SkillBreakdown: map[string]scoring.SkillScore{
			"numberOperations": {Correct: 4, Total: 5, Percentage: 80},
		},
		PISAProjection: 500,
	}
	p.Record(r, start.Add(13*time.Minute))
	return p
}

func TestProgressSaveAndLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// No record yet.
	got, err := repo.Load(ctx, "user-001")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil progress when none stored")
	}

	p := testProgress("user-001")
	if err := repo.Save(ctx, "user-001", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Load(ctx, "user-001")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Dates included: the stored document must deserialize deep-equal.
	if !reflect.DeepEqual(p, got) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}

func TestProgressSaveReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p := testProgress("user-001")
	if err := repo.Save(ctx, "user-001", p); err != nil {
		t.Fatalf("first save: %v", err)
	}

	r := scoring.Result{
		ID:           "result-002",
		AssessmentID: "reading-basic",
		StudentID:    "user-001",
		StartTime:    time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 3, 15, 9, 20, 0, 0, time.UTC),
		Percentage:   90,
	}
	p.Record(r, r.EndTime)
	if err := repo.Save(ctx, "user-001", p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	count, err := s.Client().ProgressRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("records = %d, want 1 (wholesale replace)", count)
	}

	got, err := repo.Load(ctx, "user-001")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.OverallStats.TotalAssessments != 2 {
		t.Errorf("TotalAssessments = %d, want 2", got.OverallStats.TotalAssessments)
	}
}

func TestProgressRecordsAreIsolatedPerLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "user-001", testProgress("user-001")); err != nil {
		t.Fatalf("save user-001: %v", err)
	}
	if err := repo.Save(ctx, "user-002", progress.New("user-002")); err != nil {
		t.Fatalf("save user-002: %v", err)
	}

	got, err := repo.Load(ctx, "user-002")
	if err != nil {
		t.Fatalf("load user-002: %v", err)
	}
	if got.OverallStats.TotalAssessments != 0 {
		t.Errorf("user-002 sees %d assessments, want 0", got.OverallStats.TotalAssessments)
	}
}

func TestProgressLoadMalformedData(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// A record whose document no longer matches the progress shape.
	_, err := s.Client().ProgressRecord.Create().
		SetUserID("user-001").
		SetData(map[string]any{"achievements": "not-a-list"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed bad record: %v", err)
	}

	_, err = s.ProgressRepo().Load(ctx, "user-001")
	if !errors.Is(err, progress.ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}
}

func TestResultEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []ResultEventData{
		{ResultID: "r1", UserID: "user-001", AssessmentID: "math-basic", Subject: "mathematics", Score: 3, Percentage: 60, PISAProjection: 450, DurationMinutes: 10},
		{ResultID: "r2", UserID: "user-001", AssessmentID: "reading-basic", Subject: "reading", Score: 5, Percentage: 100, PISAProjection: 550, DurationMinutes: 15},
		{ResultID: "r3", UserID: "guest-user", AssessmentID: "math-basic", Subject: "mathematics", Score: 1, Percentage: 20, PISAProjection: 350, DurationMinutes: 5},
	}
	for _, a := range attempts {
		if err := repo.AppendResult(ctx, a); err != nil {
			t.Fatalf("append %s: %v", a.ResultID, err)
		}
	}

	all, err := repo.QueryResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("results = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Sequence <= all[i-1].Sequence {
			t.Errorf("sequence not ascending: %d then %d", all[i-1].Sequence, all[i].Sequence)
		}
	}

	mine, err := repo.QueryResults(ctx, QueryOpts{UserID: "user-001"})
	if err != nil {
		t.Fatalf("query by user: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("user-001 results = %d, want 2", len(mine))
	}

	math, err := repo.QueryResults(ctx, QueryOpts{Subject: "mathematics"})
	if err != nil {
		t.Fatalf("query by subject: %v", err)
	}
	if len(math) != 2 {
		t.Errorf("mathematics results = %d, want 2", len(math))
	}

	limited, err := repo.QueryResults(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ResultID != "r1" {
		t.Errorf("limited = %+v, want first event only", limited)
	}
}

func TestAnalyticsEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnalytics(ctx, analytics.Event{
		Name:         analytics.EventAssessmentStart,
		UserID:       "user-001",
		AssessmentID: "math-basic",
		Subject:      "mathematics",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().AnalyticsEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("analytics events = %d, want 1", count)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "model-a", Purpose: "study-tips", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true, RequestBody: `{"prompt":"one"}`, ResponseBody: `{"tips":[]}`},
		{Provider: "anthropic", Model: "model-a", Purpose: "study-tips", InputTokens: 200, OutputTokens: 80, LatencyMs: 1200, Success: true},
		{Provider: "openai", Model: "model-b", Purpose: "study-tips", InputTokens: 50, OutputTokens: 0, LatencyMs: 300, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("events = %d, want 3", len(got))
	}
	// Most recent first.
	if got[0].Provider != "openai" || got[2].RequestBody != `{"prompt":"one"}` {
		t.Errorf("unexpected order: first=%s last body=%q", got[0].Provider, got[2].RequestBody)
	}

	one, err := repo.GetLLMEvent(ctx, got[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.ResponseBody != `{"tips":[]}` {
		t.Errorf("got %+v, want the first appended event with its bodies", one)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for an unknown event id")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Provider: "anthropic", Model: "model-a", Purpose: "study-tips", InputTokens: 100, OutputTokens: 40, LatencyMs: 1000, Success: true},
		{Provider: "anthropic", Model: "model-a", Purpose: "study-tips", InputTokens: 300, OutputTokens: 60, LatencyMs: 2000, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("purposes = %d, want 1", len(byPurpose))
	}
	p := byPurpose[0]
	if p.Purpose != "study-tips" || p.Calls != 2 || p.InputTokens != 400 || p.OutputTokens != 100 || p.AvgLatencyMs != 1500 {
		t.Errorf("unexpected aggregate: %+v", p)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "model-a" || byModel[0].InputTokens != 400 {
		t.Errorf("unexpected model aggregate: %+v", byModel)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"progress_records", "result_events", "analytics_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
