package progress

import (
	"time"

	"github.com/rmagpantay/aral/internal/scoring"
)

// seededProgress builds the starting progress for a learner with no
// stored record. The demo account ships with history so the progress and
// achievements screens have something to show on a fresh install.
func seededProgress(userID string) *Progress {
	results, ok := sampleHistories[userID]
	if !ok {
		return New(userID)
	}
	p := New(userID)
	for _, r := range results {
		p.Record(r, r.EndTime)
	}
	return p
}

func at(y int, m time.Month, d, hh int) time.Time {
	return time.Date(y, m, d, hh, 0, 0, 0, time.UTC)
}

// sampleHistories holds the demo history, keyed by learner id. Only the
// first test account carries one.
var sampleHistories = map[string][]scoring.Result{
	"user-001": {
		{
			ID:           "sample-001",
			AssessmentID: "math-intermediate",
			StudentID:    "user-001",
			StartTime:    at(2024, 10, 12, 9),
			EndTime:      at(2024, 10, 12, 9).Add(38 * time.Minute),
			Score:        3,
			Percentage:   60,
			SkillBreakdown: map[string]scoring.SkillScore{
				"numberOperations": {Correct: 2, Total: 3, Percentage: 66.7},
				"geometry":         {Correct: 1, Total: 2, Percentage: 50},
			},
			Recommendations: []string{
				"Focus on improving numberOperations skills",
				"Focus on improving geometry skills",
			},
			PISAProjection: 450,
		},
		{
			ID:           "sample-002",
			AssessmentID: "reading-intermediate",
			StudentID:    "user-001",
			StartTime:    at(2024, 11, 2, 16),
			EndTime:      at(2024, 11, 2, 16).Add(31 * time.Minute),
			Score:        4,
			Percentage:   80,
			SkillBreakdown: map[string]scoring.SkillScore{
				"comprehension":    {Correct: 2, Total: 2, Percentage: 100},
				"criticalAnalysis": {Correct: 2, Total: 3, Percentage: 66.7},
			},
			Recommendations: []string{"Focus on improving criticalAnalysis skills"},
			PISAProjection:  500,
		},
		{
			ID:           "sample-003",
			AssessmentID: "math-intermediate",
			StudentID:    "user-001",
			StartTime:    at(2024, 11, 20, 10),
			EndTime:      at(2024, 11, 20, 10).Add(35 * time.Minute),
			Score:        4,
			Percentage:   80,
			SkillBreakdown: map[string]scoring.SkillScore{
				"numberOperations": {Correct: 3, Total: 3, Percentage: 100},
				"geometry":         {Correct: 1, Total: 2, Percentage: 50},
			},
			Recommendations: []string{"Focus on improving geometry skills"},
			PISAProjection:  500,
		},
	},
}
