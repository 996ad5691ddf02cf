package progress

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/scoring"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// result builds a minimal scored result for aggregation tests.
func result(assessmentID string, percentage float64) scoring.Result {
	return scoring.Result{
		ID:           fmt.Sprintf("r-%s-%v", assessmentID, percentage),
		AssessmentID: assessmentID,
		StudentID:    "user-001",
		StartTime:    testNow,
		EndTime:      testNow.Add(10 * time.Minute),
		Percentage:   percentage,
	}
}

func recordAll(p *Progress, results ...scoring.Result) {
	for i, r := range results {
		p.Record(r, testNow.Add(time.Duration(i)*time.Minute))
	}
}

func TestOverallStats(t *testing.T) {
	p := New("user-001")
	recordAll(p,
		result("math-basic", 40),
		result("reading-basic", 80),
		result("science-basic", 90),
	)

	o := p.OverallStats
	if o.TotalAssessments != 3 {
		t.Errorf("TotalAssessments = %d, want 3", o.TotalAssessments)
	}
	if o.AverageScore != 70 {
		t.Errorf("AverageScore = %v, want 70", o.AverageScore)
	}
	if o.BestScore != 90 {
		t.Errorf("BestScore = %v, want 90", o.BestScore)
	}
	if o.TotalTimeSpentMinutes != 30 {
		t.Errorf("TotalTimeSpentMinutes = %d, want 30", o.TotalTimeSpentMinutes)
	}
	if o.StrongestSubject != catalog.SubjectScience {
		t.Errorf("StrongestSubject = %q, want science", o.StrongestSubject)
	}
	if o.WeakestSubject != catalog.SubjectMathematics {
		t.Errorf("WeakestSubject = %q, want mathematics", o.WeakestSubject)
	}
}

func TestStrongestWeakestTieBreak(t *testing.T) {
	p := New("user-001")
	recordAll(p,
		result("math-basic", 75),
		result("reading-basic", 75),
	)
	// Equal averages: the first subject in fixed order wins both slots.
	if p.OverallStats.StrongestSubject != catalog.SubjectMathematics {
		t.Errorf("StrongestSubject = %q, want mathematics", p.OverallStats.StrongestSubject)
	}
	if p.OverallStats.WeakestSubject != catalog.SubjectMathematics {
		t.Errorf("WeakestSubject = %q, want mathematics", p.OverallStats.WeakestSubject)
	}
}

func TestEmptyHistoryHasNoSubjects(t *testing.T) {
	p := New("user-001")
	p.recompute()
	if p.OverallStats.StrongestSubject != "" || p.OverallStats.WeakestSubject != "" {
		t.Errorf("subjects without data = (%q, %q), want empty",
			p.OverallStats.StrongestSubject, p.OverallStats.WeakestSubject)
	}
	if p.OverallStats.AverageScore != 0 {
		t.Errorf("AverageScore = %v, want 0", p.OverallStats.AverageScore)
	}
}

func TestSubjectClassification(t *testing.T) {
	tests := []struct {
		assessmentID string
		want         catalog.Subject
	}{
		{"math-basic", catalog.SubjectMathematics},
		{"math-advanced", catalog.SubjectMathematics},
		{"reading-intermediate", catalog.SubjectReading},
		{"science-basic", catalog.SubjectScience},
		{"combined-adaptive", catalog.SubjectScience},
	}
	for _, tt := range tests {
		if got := classifySubject(tt.assessmentID); got != tt.want {
			t.Errorf("classifySubject(%q) = %q, want %q", tt.assessmentID, got, tt.want)
		}
	}
}

func TestTrendClassification(t *testing.T) {
	tests := []struct {
		name string
		pcts []float64
		want Trend
	}{
		{"empty", nil, TrendStable},
		{"single", []float64{80}, TrendStable},
		{"two results no older window", []float64{40, 90}, TrendStable},
		{"three results no older window", []float64{40, 60, 90}, TrendStable},
		{"improving", []float64{50, 55, 52, 90, 92, 91}, TrendImproving},
		{"declining", []float64{90, 92, 91, 50, 55, 52}, TrendDeclining},
		{"flat", []float64{70, 71, 69, 70, 72, 68}, TrendStable},
		{"within 5 point band", []float64{70, 70, 70, 74, 74, 74}, TrendStable},
		{"partial older window", []float64{40, 80, 82, 81}, TrendImproving},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyTrend(tt.pcts); got != tt.want {
				t.Errorf("classifyTrend(%v) = %q, want %q", tt.pcts, got, tt.want)
			}
		})
	}
}

func TestSubjectTrendFromHistory(t *testing.T) {
	p := New("user-001")
	for _, pct := range []float64{50, 55, 52, 90, 92, 91} {
		recordAll(p, result("math-basic", pct))
	}
	stats := p.SubjectProgress[catalog.SubjectMathematics]
	if stats.Trend != TrendImproving {
		t.Errorf("Trend = %q, want improving", stats.Trend)
	}
	if stats.AssessmentCount != 6 {
		t.Errorf("AssessmentCount = %d, want 6", stats.AssessmentCount)
	}
	if stats.LatestScore != 91 {
		t.Errorf("LatestScore = %v, want 91", stats.LatestScore)
	}
}

func TestSkillAreaRunningAverage(t *testing.T) {
	p := New("user-001")
	r1 := result("math-basic", 50)
	r1.SkillBreakdown = map[string]scoring.SkillScore{
		"numberOperations": {Correct: 1, Total: 2, Percentage: 50},
	}
	r2 := result("math-intermediate", 90)
	r2.SkillBreakdown = map[string]scoring.SkillScore{
		"numberOperations": {Correct: 9, Total: 10, Percentage: 90},
	}
	recordAll(p, r1, r2)

	st := p.SkillAreas["numberOperations"]
	if st.AssessmentCount != 2 {
		t.Errorf("AssessmentCount = %d, want 2", st.AssessmentCount)
	}
	if st.AverageScore != 70 {
		t.Errorf("AverageScore = %v, want 70", st.AverageScore)
	}
	if st.LatestScore != 90 {
		t.Errorf("LatestScore = %v, want 90", st.LatestScore)
	}
	// Average of exactly 70 is not flagged; strictly below 70 is.
	if st.NeedsImprovement {
		t.Error("NeedsImprovement at avg 70, want false")
	}

	r3 := result("math-advanced", 20)
	r3.SkillBreakdown = map[string]scoring.SkillScore{
		"numberOperations": {Correct: 1, Total: 5, Percentage: 20},
	}
	recordAll(p, r3)
	if !p.SkillAreas["numberOperations"].NeedsImprovement {
		t.Error("NeedsImprovement after avg drops below 70, want true")
	}
}

func TestFirstAssessmentAchievementNotDuplicated(t *testing.T) {
	p := New("user-001")
	recordAll(p, result("math-basic", 60))

	if !p.HasAchievement(AchievementFirstAssessment) {
		t.Fatal("first_assessment missing after one result")
	}
	recordAll(p, result("math-basic", 70), result("reading-basic", 80))

	count := 0
	for _, a := range p.Achievements {
		if a.ID == AchievementFirstAssessment {
			count++
		}
	}
	if count != 1 {
		t.Errorf("first_assessment earned %d times, want 1", count)
	}
}

func TestPerfectScoreAchievement(t *testing.T) {
	p := New("user-001")
	recordAll(p, result("math-basic", 99))
	if p.HasAchievement(AchievementPerfectScore) {
		t.Error("perfect_score at 99%, want unearned")
	}
	recordAll(p, result("math-basic", 100))
	if !p.HasAchievement(AchievementPerfectScore) {
		t.Error("perfect_score at 100%, want earned")
	}
}

func TestConsistentPerformerAchievement(t *testing.T) {
	p := New("user-001")
	for _, pct := range []float64{85, 80, 90, 75} {
		recordAll(p, result("reading-basic", pct))
	}
	if p.HasAchievement(AchievementConsistentPerformer) {
		t.Error("consistent_performer after 4 results, want unearned")
	}
	recordAll(p, result("reading-basic", 80)) // 5th, average 82
	if !p.HasAchievement(AchievementConsistentPerformer) {
		t.Error("consistent_performer at 5 results avg 82, want earned")
	}
}

func TestSubjectMasteryAchievement(t *testing.T) {
	p := New("user-001")
	recordAll(p,
		result("math-basic", 90),
		result("math-intermediate", 85),
	)
	if p.HasAchievement("mathematics_mastery") {
		t.Error("mastery after 2 results, want unearned")
	}
	recordAll(p, result("math-advanced", 95))
	if !p.HasAchievement("mathematics_mastery") {
		t.Fatal("mastery at 3 results avg 90, want earned")
	}

	for _, a := range p.Achievements {
		if a.ID == "mathematics_mastery" && a.Title != "Mathematics Master" {
			t.Errorf("title = %q, want %q", a.Title, "Mathematics Master")
		}
	}
}

func TestRecomputeIsDeterministic(t *testing.T) {
	history := []scoring.Result{
		result("math-basic", 70),
		result("reading-basic", 85),
		result("combined-adaptive", 55),
		result("math-intermediate", 100),
	}

	a, b := New("user-001"), New("user-001")
	recordAll(a, history...)
	recordAll(b, history...)

	if !reflect.DeepEqual(a.OverallStats, b.OverallStats) {
		t.Error("OverallStats differ across identical histories")
	}
	if !reflect.DeepEqual(a.SubjectProgress, b.SubjectProgress) {
		t.Error("SubjectProgress differs across identical histories")
	}
	if !reflect.DeepEqual(a.SkillAreas, b.SkillAreas) {
		t.Error("SkillAreas differ across identical histories")
	}
	if !reflect.DeepEqual(a.Achievements, b.Achievements) {
		t.Error("Achievements differ across identical histories")
	}
}

func TestProgressJSONRoundTrip(t *testing.T) {
	p := New("user-001")
	r := result("math-basic", 100)
	r.SkillBreakdown = map[string]scoring.SkillScore{
		"numberOperations": {Correct: 2, Total: 2, Percentage: 100},
	}
	r.Answers = []scoring.GradedAnswer{
		{QuestionID: "math-001", Answer: scoring.Single("8"), TimeSpent: 12, IsCorrect: true},
	}
	p.Record(r, testNow)

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Progress
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(*p, got) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, *p)
	}
}
