// Package scoring grades completed assessment sessions.
//
// Scoring is a pure function of the submission and the assessment
// definition: repeated calls on the same inputs produce identical scores,
// breakdowns and recommendations. Only the Result's own id is fresh.
package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/rmagpantay/aral/internal/catalog"
)

// recommendationThreshold is the skill percentage below which a focus
// recommendation is emitted.
const recommendationThreshold = 70.0

// Submission carries everything the scorer needs from a finished session.
type Submission struct {
	StudentID string
	StartTime time.Time
	EndTime   time.Time

	// Answers maps question id to the latest captured answer.
	Answers map[string]Answer

	// TimeSpent maps question id to seconds spent answering.
	TimeSpent map[string]int
}

// Score grades a submission against its assessment definition.
//
// Every question in the assessment is graded; an unanswered question
// counts as incorrect, not skipped. An empty assessment produces a valid
// zero-percentage Result.
func Score(a catalog.Assessment, sub Submission) Result {
	studentID := sub.StudentID
	if studentID == "" {
		studentID = GuestStudentID
	}

	answers := make([]GradedAnswer, 0, len(a.Questions))
	breakdown := make(map[string]SkillScore, 4)
	var skillOrder []string
	correctCount := 0

	for _, q := range a.Questions {
		ans := sub.Answers[q.ID]
		correct := isCorrect(q, ans)
		if correct {
			correctCount++
		}

		answers = append(answers, GradedAnswer{
			QuestionID: q.ID,
			Answer:     ans,
			TimeSpent:  sub.TimeSpent[q.ID],
			IsCorrect:  correct,
		})

		ss, seen := breakdown[q.SkillArea]
		if !seen {
			skillOrder = append(skillOrder, q.SkillArea)
		}
		ss.Total++
		if correct {
			ss.Correct++
		}
		breakdown[q.SkillArea] = ss
	}

	for skill, ss := range breakdown {
		ss.Percentage = float64(ss.Correct) / float64(ss.Total) * 100
		breakdown[skill] = ss
	}

	var percentage float64
	if len(a.Questions) > 0 {
		percentage = float64(correctCount) / float64(len(a.Questions)) * 100
	}

	// One recommendation per weak skill area, in first-appearance order.
	var recommendations []string
	for _, skill := range skillOrder {
		if breakdown[skill].Percentage < recommendationThreshold {
			recommendations = append(recommendations, fmt.Sprintf("Focus on improving %s skills", skill))
		}
	}

	return Result{
		ID:              uuid.New().String(),
		AssessmentID:    a.ID,
		StudentID:       studentID,
		StartTime:       sub.StartTime,
		EndTime:         sub.EndTime,
		Answers:         answers,
		Score:           correctCount,
		Percentage:      percentage,
		SkillBreakdown:  breakdown,
		Recommendations: recommendations,
		PISAProjection:  ProjectPISA(percentage),
	}
}

// ProjectPISA maps a local percentage score onto the PISA scale.
// A fixed linear projection, not a statistical model.
func ProjectPISA(percentage float64) int {
	return int(math.Round(300 + percentage*2.5))
}

// isCorrect compares a captured answer against the question's key.
// Matching questions use exact set equality; everything else uses exact
// string equality. A zero answer is always incorrect.
func isCorrect(q catalog.Question, ans Answer) bool {
	if ans.IsZero() {
		return false
	}
	if q.IsMatching() {
		return ans.IsSet() && setsEqual(ans.Values(), q.CorrectAnswers)
	}
	return !ans.IsSet() && ans.Value() == q.CorrectAnswer
}
