// Package tutor turns a learner's progress into personalized study tips
// via an LLM provider.
package tutor

// StudyTip is one actionable suggestion for a weak skill area.
type StudyTip struct {
	SkillArea string `json:"skill_area"`
	Tip       string `json:"tip"`
	Activity  string `json:"activity"`
}

// StudyTips is the full tip set generated for a learner.
type StudyTips struct {
	Tips          []StudyTip `json:"tips"`
	Encouragement string     `json:"encouragement"`
}
