package scoring

import "time"

// GuestStudentID attributes results scored without an authenticated
// learner. Guest results are returned to the caller but never persisted.
const GuestStudentID = "guest-user"

// GradedAnswer is one question's outcome within a Result.
type GradedAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     Answer `json:"answer"`
	TimeSpent  int    `json:"timeSpent"` // seconds
	IsCorrect  bool   `json:"isCorrect"`
}

// SkillScore is the per-skill-area slice of a Result.
type SkillScore struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Result is an immutable scored assessment attempt. Once appended to a
// learner's history it is never mutated or deleted.
type Result struct {
	ID             string                `json:"id"`
	AssessmentID   string                `json:"assessmentId"`
	StudentID      string                `json:"studentId"`
	StartTime      time.Time             `json:"startTime"`
	EndTime        time.Time             `json:"endTime"`
	Answers        []GradedAnswer        `json:"answers"`
	Score          int                   `json:"score"`
	Percentage     float64               `json:"percentage"`
	SkillBreakdown map[string]SkillScore `json:"skillBreakdown"`
	Recommendations []string             `json:"recommendations"`
	PISAProjection int                   `json:"pisaProjection"`
}

// DurationMinutes returns the attempt duration rounded to whole minutes.
func (r Result) DurationMinutes() int {
	return int(r.EndTime.Sub(r.StartTime).Round(time.Minute) / time.Minute)
}
