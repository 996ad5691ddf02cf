// Package progress maintains each learner's longitudinal record: the
// full result history plus derived statistics, trends, skill averages,
// and achievements.
//
// Derived state is a pure function of the result history. Every record
// operation recomputes it from scratch rather than patching increments,
// so the stored Progress can never drift from its history.
package progress

import (
	"time"

	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/scoring"
)

// Trend classifies a subject's recent score direction.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// OverallStats summarizes the whole result history.
type OverallStats struct {
	TotalAssessments      int     `json:"totalAssessments"`
	AverageScore          float64 `json:"averageScore"`
	BestScore             float64 `json:"bestScore"`
	TotalTimeSpentMinutes int     `json:"totalTimeSpentMinutes"`

	// StrongestSubject and WeakestSubject are empty until at least one
	// result exists.
	StrongestSubject catalog.Subject `json:"strongestSubject"`
	WeakestSubject   catalog.Subject `json:"weakestSubject"`
}

// SubjectStats summarizes one subject's slice of the history.
type SubjectStats struct {
	AssessmentCount int     `json:"assessmentCount"`
	AverageScore    float64 `json:"averageScore"`
	LatestScore     float64 `json:"latestScore"`
	Trend           Trend   `json:"trend"`
}

// SkillAreaStats tracks a running average for one skill area across all
// results that reported it.
type SkillAreaStats struct {
	AssessmentCount  int     `json:"assessmentCount"`
	AverageScore     float64 `json:"averageScore"`
	LatestScore      float64 `json:"latestScore"`
	NeedsImprovement bool    `json:"needsImprovement"`
}

// Achievement is a badge earned at most once per learner.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// Progress is the persisted record for one learner. It round-trips
// through JSON; time fields serialize as RFC 3339.
type Progress struct {
	UserID            string                           `json:"userId"`
	AssessmentResults []scoring.Result                 `json:"assessmentResults"`
	OverallStats      OverallStats                     `json:"overallStats"`
	SubjectProgress   map[catalog.Subject]SubjectStats `json:"subjectProgress"`
	SkillAreas        map[string]SkillAreaStats        `json:"skillAreas"`
	Achievements      []Achievement                    `json:"achievements"`
	LastUpdated       time.Time                        `json:"lastUpdated"`
}

// New returns an empty Progress for the given learner.
func New(userID string) *Progress {
	return &Progress{
		UserID:          userID,
		SubjectProgress: make(map[catalog.Subject]SubjectStats),
		SkillAreas:      make(map[string]SkillAreaStats),
	}
}

// HasAchievement reports whether the learner already earned the badge.
func (p *Progress) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
