package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rmagpantay/aral/internal/llm"
	"github.com/rmagpantay/aral/internal/progress"
	"github.com/rmagpantay/aral/internal/scoring"
)

func progressWithHistory(t *testing.T) *progress.Progress {
	t.Helper()
	p := progress.New("user-001")
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	r := scoring.Result{
		ID:           "r1",
		AssessmentID: "math-basic",
		StudentID:    "user-001",
		StartTime:    now,
		EndTime:      now.Add(10 * time.Minute),
		Score:        2,
		Percentage:   40,
		SkillBreakdown: map[string]scoring.SkillScore{
			"numberOperations": {Correct: 1, Total: 3, Percentage: 33.3},
			"problemSolving":   {Correct: 1, Total: 1, Percentage: 100},
		},
	}
	p.Record(r, now.Add(11*time.Minute))
	return p
}

func cannedTips(t *testing.T) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(StudyTips{
		Tips: []StudyTip{
			{SkillArea: "numberOperations", Tip: "Practice column addition daily.", Activity: "Solve ten two-digit sums."},
		},
		Encouragement: "Your problem solving is already strong!",
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestGenerateTips(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedTips(t)})
	svc := NewService(mock)

	tips, err := svc.GenerateTips(context.Background(), progressWithHistory(t))
	if err != nil {
		t.Fatalf("GenerateTips: %v", err)
	}
	if len(tips.Tips) != 1 || tips.Tips[0].SkillArea != "numberOperations" {
		t.Errorf("tips = %+v", tips)
	}
	if tips.Encouragement == "" {
		t.Error("missing encouragement")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("provider calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != StudyTipsSchema {
		t.Error("request did not carry the study tips schema")
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, "numberOperations") {
		t.Error("prompt missing weak skill area")
	}
	if strings.Contains(strings.Split(user, "needing improvement")[1], "problemSolving") {
		t.Error("strong skill area listed as weak")
	}
}

func TestGenerateTipsWithoutHistory(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)

	_, err := svc.GenerateTips(context.Background(), progress.New("user-001"))
	if !errors.Is(err, ErrNoHistory) {
		t.Errorf("err = %v, want ErrNoHistory", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0", mock.CallCount())
	}
}

func TestGenerateTipsProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock)

	if _, err := svc.GenerateTips(context.Background(), progressWithHistory(t)); err == nil {
		t.Error("expected provider error to surface")
	}
}

func TestRequestAndConsumeTips(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedTips(t)})
	svc := NewService(mock)

	if _, ok := svc.ConsumeTips(); ok {
		t.Fatal("nothing should be pending before a request")
	}

	svc.RequestTips(context.Background(), progressWithHistory(t))

	deadline := time.After(2 * time.Second)
	for {
		if tips, ok := svc.ConsumeTips(); ok {
			if len(tips.Tips) != 1 {
				t.Errorf("tips = %+v", tips)
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("tips never became ready")
		case <-time.After(5 * time.Millisecond):
		}
	}

	// Slot is cleared after consumption.
	if _, ok := svc.ConsumeTips(); ok {
		t.Error("consume should clear the pending slot")
	}
}
