package tutor

import "github.com/rmagpantay/aral/internal/llm"

// StudyTipsSchema defines the JSON schema for study tip generation.
var StudyTipsSchema = &llm.Schema{
	Name:        "study-tips",
	Description: "Personalized study tips for a student based on their assessment history",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tips": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill_area": map[string]any{
							"type":        "string",
							"description": "The skill area this tip addresses",
						},
						"tip": map[string]any{
							"type":        "string",
							"description": "Concrete study advice (2-3 sentences)",
						},
						"activity": map[string]any{
							"type":        "string",
							"description": "One practice activity the student can do today (1-2 sentences)",
						},
					},
					"required":             []any{"skill_area", "tip", "activity"},
					"additionalProperties": false,
				},
				"description": "1-4 tips, one per weak skill area",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "Short encouraging message referencing the student's strengths (1-2 sentences)",
			},
		},
		"required":             []any{"tips", "encouragement"},
		"additionalProperties": false,
	},
}
