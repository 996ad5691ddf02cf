package progress

import (
	"strings"
	"time"

	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/scoring"
)

// Record appends a result to the history and recomputes every derived
// field, then evaluates achievement rules against the new state.
func (p *Progress) Record(r scoring.Result, now time.Time) {
	p.AssessmentResults = append(p.AssessmentResults, r)
	p.recompute()
	p.evaluateAchievements(now)
	p.LastUpdated = now
}

// recompute rebuilds overall stats, subject progress, and skill areas
// from the full history.
func (p *Progress) recompute() {
	results := p.AssessmentResults

	var overall OverallStats
	overall.TotalAssessments = len(results)
	var sum float64
	for _, r := range results {
		sum += r.Percentage
		if r.Percentage > overall.BestScore {
			overall.BestScore = r.Percentage
		}
		overall.TotalTimeSpentMinutes += r.DurationMinutes()
	}
	if len(results) > 0 {
		overall.AverageScore = sum / float64(len(results))
	}

	// Partition the history by subject, preserving chronological order
	// within each partition.
	bySubject := make(map[catalog.Subject][]float64)
	for _, r := range results {
		s := classifySubject(r.AssessmentID)
		bySubject[s] = append(bySubject[s], r.Percentage)
	}

	subjects := make(map[catalog.Subject]SubjectStats, len(bySubject))
	for s, pcts := range bySubject {
		var total float64
		for _, pct := range pcts {
			total += pct
		}
		subjects[s] = SubjectStats{
			AssessmentCount: len(pcts),
			AverageScore:    total / float64(len(pcts)),
			LatestScore:     pcts[len(pcts)-1],
			Trend:           classifyTrend(pcts),
		}
	}

	// Fixed subject order makes the strongest/weakest tie-break
	// deterministic.
	for _, s := range catalog.AllSubjects() {
		stats, ok := subjects[s]
		if !ok {
			continue
		}
		if overall.StrongestSubject == "" || stats.AverageScore > subjects[overall.StrongestSubject].AverageScore {
			overall.StrongestSubject = s
		}
		if overall.WeakestSubject == "" || stats.AverageScore < subjects[overall.WeakestSubject].AverageScore {
			overall.WeakestSubject = s
		}
	}

	skills := make(map[string]SkillAreaStats)
	for _, r := range results {
		for area, score := range r.SkillBreakdown {
			st := skills[area]
			st.AssessmentCount++
			st.AverageScore = (st.AverageScore*float64(st.AssessmentCount-1) + score.Percentage) / float64(st.AssessmentCount)
			st.LatestScore = score.Percentage
			st.NeedsImprovement = st.AverageScore < 70
			skills[area] = st
		}
	}

	p.OverallStats = overall
	p.SubjectProgress = subjects
	p.SkillAreas = skills
}

// classifySubject maps an assessment id to its subject by naming
// convention. Combined assessments have no marker and land in science.
func classifySubject(assessmentID string) catalog.Subject {
	switch {
	case strings.Contains(assessmentID, "math"):
		return catalog.SubjectMathematics
	case strings.Contains(assessmentID, "reading"):
		return catalog.SubjectReading
	default:
		return catalog.SubjectScience
	}
}

// classifyTrend compares the mean of the most recent up-to-3 scores
// against the mean of the up-to-3 scores immediately before them. With
// no earlier window to compare against, the trend is stable.
func classifyTrend(pcts []float64) Trend {
	if len(pcts) < 2 {
		return TrendStable
	}
	recentStart := len(pcts) - 3
	if recentStart < 0 {
		recentStart = 0
	}
	olderStart := recentStart - 3
	if olderStart < 0 {
		olderStart = 0
	}
	older := pcts[olderStart:recentStart]
	if len(older) == 0 {
		return TrendStable
	}

	diff := mean(pcts[recentStart:]) - mean(older)
	switch {
	case diff > 5:
		return TrendImproving
	case diff < -5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
