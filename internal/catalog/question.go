package catalog

// QuestionType describes how a question is answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeTrueFalse      QuestionType = "true-false"
	TypeOpenEnded      QuestionType = "open-ended"
	TypeMatching       QuestionType = "matching"
)

// Subject is a PISA content domain.
type Subject string

const (
	SubjectMathematics Subject = "mathematics"
	SubjectReading     Subject = "reading"
	SubjectScience     Subject = "science"
	SubjectCombined    Subject = "combined"
)

// AllSubjects returns the scored subjects in display order.
// SubjectCombined is an assessment label, not a scoring bucket.
func AllSubjects() []Subject {
	return []Subject{SubjectMathematics, SubjectReading, SubjectScience}
}

// Difficulty is the declared difficulty of a question or assessment.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyAdaptive Difficulty = "adaptive"
)

// Question is a single catalog item. Questions are immutable once loaded.
//
// For matching questions CorrectAnswers holds the full answer set and
// CorrectAnswer is empty; for every other type CorrectAnswer holds the
// single expected value.
type Question struct {
	ID              string
	Type            QuestionType
	Subject         Subject
	Difficulty      Difficulty
	AgeGroup        string
	Prompt          string
	Options         []string
	CorrectAnswer   string
	CorrectAnswers  []string
	Explanation     string
	SkillArea       string
	CulturalContext string
	TimeLimitSecs   int
}

// IsMatching reports whether the question grades by set equality.
func (q Question) IsMatching() bool {
	return q.Type == TypeMatching
}
