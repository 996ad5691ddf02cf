package catalog

import (
	"errors"
	"testing"
	"time"
)

func TestGetKnownAssessment(t *testing.T) {
	a, err := Get("math-basic")
	if err != nil {
		t.Fatalf("Get(math-basic) error: %v", err)
	}
	if a.Subject != SubjectMathematics {
		t.Errorf("Subject = %q, want %q", a.Subject, SubjectMathematics)
	}
	if a.Duration != 30*time.Minute {
		t.Errorf("Duration = %v, want 30m", a.Duration)
	}
	if len(a.Questions) == 0 {
		t.Error("expected questions in math-basic")
	}
}

func TestGetUnknownAssessment(t *testing.T) {
	_, err := Get("underwater-basket-weaving")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("All() returned empty catalog")
	}
	all[0].ID = "mutated"
	fresh := All()
	if fresh[0].ID == "mutated" {
		t.Error("All() must not expose internal catalog storage")
	}
}

func TestCombinedConcatenatesBanks(t *testing.T) {
	a, err := Get("combined-adaptive")
	if err != nil {
		t.Fatalf("Get(combined-adaptive) error: %v", err)
	}
	want := len(readingQuestions) + len(mathematicsQuestions)
	if len(a.Questions) != want {
		t.Errorf("combined has %d questions, want %d", len(a.Questions), want)
	}
	// Reading bank comes first, in bank order.
	if a.Questions[0].ID != readingQuestions[0].ID {
		t.Errorf("first question = %q, want %q", a.Questions[0].ID, readingQuestions[0].ID)
	}
}

func TestSeedDataValid(t *testing.T) {
	if err := validate(seedAssessments()); err != nil {
		t.Fatalf("seed data invalid: %v", err)
	}
}

func TestValidateCatchesDuplicates(t *testing.T) {
	bad := []Assessment{
		{ID: "a", Duration: time.Minute, Questions: []Question{{ID: "q1", SkillArea: "x", CorrectAnswer: "1"}}},
		{ID: "a", Duration: time.Minute, Questions: []Question{{ID: "q1", SkillArea: "x", CorrectAnswer: "1"}}},
	}
	if err := validate(bad); err == nil {
		t.Error("expected duplicate assessment ID to fail validation")
	}
}

func TestValidateCatchesMatchingWithoutAnswerSet(t *testing.T) {
	bad := []Assessment{
		{ID: "a", Duration: time.Minute, Questions: []Question{
			{ID: "q1", Type: TypeMatching, SkillArea: "x"},
		}},
	}
	if err := validate(bad); err == nil {
		t.Error("expected matching question without answer set to fail validation")
	}
}
