package tutor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rmagpantay/aral/internal/progress"
)

const tipsSystemPrompt = `You are a supportive study coach for Filipino students aged 9-18 preparing for PISA-style assessments in mathematics, reading, and science. Give practical, specific advice a student can act on without a teacher's help.`

func buildTipsUserMessage(p *progress.Progress) string {
	var b strings.Builder

	o := p.OverallStats
	b.WriteString(fmt.Sprintf("Assessments completed: %d\n", o.TotalAssessments))
	b.WriteString(fmt.Sprintf("Average score: %.0f%%\n", o.AverageScore))
	b.WriteString(fmt.Sprintf("Best score: %.0f%%\n", o.BestScore))
	if o.StrongestSubject != "" {
		b.WriteString(fmt.Sprintf("Strongest subject: %s\n", o.StrongestSubject))
	}
	if o.WeakestSubject != "" {
		b.WriteString(fmt.Sprintf("Weakest subject: %s\n", o.WeakestSubject))
	}

	b.WriteString("\nSubjects:\n")
	for _, s := range sortedKeys(p.SubjectProgress) {
		st := p.SubjectProgress[s]
		b.WriteString(fmt.Sprintf("- %s: %d assessments, average %.0f%%, trend %s\n",
			s, st.AssessmentCount, st.AverageScore, st.Trend))
	}

	b.WriteString("\nSkill areas needing improvement (average below 70%):\n")
	weak := weakSkillAreas(p)
	if len(weak) == 0 {
		b.WriteString("None\n")
	} else {
		for _, area := range weak {
			st := p.SkillAreas[area]
			b.WriteString(fmt.Sprintf("- %s: average %.0f%% over %d assessments\n",
				area, st.AverageScore, st.AssessmentCount))
		}
	}

	b.WriteString(`
Instructions:
1. Write one tip per weak skill area listed above (at most 4). If none are weak, give one tip for the weakest subject instead.
2. Each tip names the skill area, gives concrete advice, and suggests one practice activity doable at home today.
3. Keep language simple and encouraging. Do not mention PISA mechanics or scoring formulas.
4. End with a short encouragement that references something the student is already doing well.`)

	return b.String()
}

// weakSkillAreas returns flagged skill areas in deterministic order.
func weakSkillAreas(p *progress.Progress) []string {
	var weak []string
	for area, st := range p.SkillAreas {
		if st.NeedsImprovement {
			weak = append(weak, area)
		}
	}
	sort.Strings(weak)
	return weak
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
