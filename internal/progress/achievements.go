package progress

import (
	"fmt"
	"time"

	"github.com/rmagpantay/aral/internal/catalog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Achievement ids. Each may be earned at most once per learner.
const (
	AchievementFirstAssessment     = "first_assessment"
	AchievementPerfectScore        = "perfect_score"
	AchievementConsistentPerformer = "consistent_performer"
)

// MasteryAchievementID returns the per-subject mastery badge id.
func MasteryAchievementID(s catalog.Subject) string {
	return string(s) + "_mastery"
}

var masteryIcons = map[catalog.Subject]string{
	catalog.SubjectMathematics: "🔢",
	catalog.SubjectReading:     "📚",
	catalog.SubjectScience:     "🔬",
}

// evaluateAchievements checks every rule against the recomputed state
// and appends badges that just became satisfied. Already-earned badges
// are never duplicated.
func (p *Progress) evaluateAchievements(now time.Time) {
	award := func(id, title, description, icon string) {
		if p.HasAchievement(id) {
			return
		}
		p.Achievements = append(p.Achievements, Achievement{
			ID:          id,
			Title:       title,
			Description: description,
			Icon:        icon,
			EarnedAt:    now,
		})
	}

	if p.OverallStats.TotalAssessments >= 1 {
		award(AchievementFirstAssessment, "Getting Started",
			"Complete your first assessment", "🎯")
	}
	if p.OverallStats.BestScore == 100 {
		award(AchievementPerfectScore, "Perfect Score",
			"Score 100% on an assessment", "🏆")
	}
	if p.OverallStats.TotalAssessments >= 5 && p.OverallStats.AverageScore >= 80 {
		award(AchievementConsistentPerformer, "Consistent Performer",
			"Complete 5 assessments with an average score of 80% or higher", "⭐")
	}

	title := cases.Title(language.English)
	for _, s := range catalog.AllSubjects() {
		stats, ok := p.SubjectProgress[s]
		if !ok {
			continue
		}
		if stats.AssessmentCount >= 3 && stats.AverageScore >= 85 {
			award(MasteryAchievementID(s),
				fmt.Sprintf("%s Master", title.String(string(s))),
				fmt.Sprintf("Maintain an average of 85%% or higher across 3 %s assessments", s),
				masteryIcons[s])
		}
	}
}
