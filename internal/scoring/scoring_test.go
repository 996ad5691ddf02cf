package scoring

import (
	"reflect"
	"testing"
	"time"

	"github.com/rmagpantay/aral/internal/catalog"
)

func twoQuestionAssessment() catalog.Assessment {
	return catalog.Assessment{
		ID:       "math-test",
		Subject:  catalog.SubjectMathematics,
		Duration: 10 * time.Minute,
		Questions: []catalog.Question{
			{ID: "q1", Type: catalog.TypeOpenEnded, SkillArea: "numberOperations", CorrectAnswer: "8"},
			{ID: "q2", Type: catalog.TypeOpenEnded, SkillArea: "numberOperations", CorrectAnswer: "12"},
		},
	}
}

func TestScoreHalfCorrect(t *testing.T) {
	a := twoQuestionAssessment()
	sub := Submission{
		StudentID: "user-001",
		StartTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 1, 10, 20, 0, 0, time.UTC),
		Answers: map[string]Answer{
			"q1": Single("8"),
			"q2": Single("10"),
		},
	}

	r := Score(a, sub)

	if r.Score != 1 {
		t.Errorf("Score = %d, want 1", r.Score)
	}
	if r.Percentage != 50 {
		t.Errorf("Percentage = %v, want 50", r.Percentage)
	}
	want := SkillScore{Correct: 1, Total: 2, Percentage: 50}
	if got := r.SkillBreakdown["numberOperations"]; got != want {
		t.Errorf("SkillBreakdown[numberOperations] = %+v, want %+v", got, want)
	}
	wantRecs := []string{"Focus on improving numberOperations skills"}
	if !reflect.DeepEqual(r.Recommendations, wantRecs) {
		t.Errorf("Recommendations = %v, want %v", r.Recommendations, wantRecs)
	}
	if r.PISAProjection != 425 {
		t.Errorf("PISAProjection = %d, want 425", r.PISAProjection)
	}
}

func TestScoreEmptySubmission(t *testing.T) {
	a := catalog.Assessment{
		ID: "empty-finish",
		Questions: []catalog.Question{
			{ID: "q1", SkillArea: "a", CorrectAnswer: "1"},
			{ID: "q2", SkillArea: "b", CorrectAnswer: "2"},
			{ID: "q3", SkillArea: "a", CorrectAnswer: "3"},
		},
	}

	r := Score(a, Submission{})

	if r.Score != 0 || r.Percentage != 0 {
		t.Errorf("Score/Percentage = %d/%v, want 0/0", r.Score, r.Percentage)
	}
	if len(r.Answers) != 3 {
		t.Fatalf("graded %d answers, want 3 (unanswered count as incorrect)", len(r.Answers))
	}
	for _, ga := range r.Answers {
		if ga.IsCorrect {
			t.Errorf("question %s graded correct with no answer", ga.QuestionID)
		}
	}
	if r.PISAProjection != 300 {
		t.Errorf("PISAProjection = %d, want 300", r.PISAProjection)
	}
}

func TestScoreZeroQuestions(t *testing.T) {
	r := Score(catalog.Assessment{ID: "none"}, Submission{})
	if r.Percentage != 0 {
		t.Errorf("Percentage = %v, want 0 (no division by zero)", r.Percentage)
	}
}

func TestMatchingSetEquality(t *testing.T) {
	a := catalog.Assessment{
		ID: "matching",
		Questions: []catalog.Question{
			{ID: "q1", Type: catalog.TypeMatching, SkillArea: "physicalSciences", CorrectAnswers: []string{"b", "a"}},
		},
	}

	cases := []struct {
		name string
		ans  Answer
		want bool
	}{
		{"reordered set is correct", Multi("a", "b"), true},
		{"same order is correct", Multi("b", "a"), true},
		{"missing element", Multi("a"), false},
		{"extra element", Multi("a", "b", "c"), false},
		{"duplicate element", Multi("a", "a"), false},
		{"single value against set", Single("a"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Score(a, Submission{Answers: map[string]Answer{"q1": tc.ans}})
			if got := r.Answers[0].IsCorrect; got != tc.want {
				t.Errorf("IsCorrect = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoringIdempotent(t *testing.T) {
	a := twoQuestionAssessment()
	sub := Submission{
		StudentID: "user-001",
		StartTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 1, 10, 20, 0, 0, time.UTC),
		Answers:   map[string]Answer{"q1": Single("8"), "q2": Single("12")},
	}

	r1 := Score(a, sub)
	r2 := Score(a, sub)

	// Fresh identity, identical everything else.
	if r1.ID == r2.ID {
		t.Error("expected fresh result ids")
	}
	r2.ID = r1.ID
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("repeated scoring diverged:\n%+v\n%+v", r1, r2)
	}
}

func TestSkillBreakdownCoversAllQuestions(t *testing.T) {
	for _, a := range catalog.All() {
		r := Score(a, Submission{})
		total := 0
		for _, ss := range r.SkillBreakdown {
			total += ss.Total
		}
		if total != len(a.Questions) {
			t.Errorf("%s: breakdown totals %d, want %d", a.ID, total, len(a.Questions))
		}
	}
}

func TestGuestAttribution(t *testing.T) {
	r := Score(twoQuestionAssessment(), Submission{})
	if r.StudentID != GuestStudentID {
		t.Errorf("StudentID = %q, want %q", r.StudentID, GuestStudentID)
	}
}

func TestPercentageBounds(t *testing.T) {
	a := twoQuestionAssessment()
	subs := []Submission{
		{},
		{Answers: map[string]Answer{"q1": Single("8")}},
		{Answers: map[string]Answer{"q1": Single("8"), "q2": Single("12")}},
	}
	for _, sub := range subs {
		r := Score(a, sub)
		if r.Percentage < 0 || r.Percentage > 100 {
			t.Errorf("Percentage %v out of [0,100]", r.Percentage)
		}
		if r.PISAProjection != ProjectPISA(r.Percentage) {
			t.Errorf("PISAProjection = %d, want %d", r.PISAProjection, ProjectPISA(r.Percentage))
		}
	}
}
