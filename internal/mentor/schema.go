package mentor

import "github.com/adityakr/prepdrill/internal/llm"

// FeedbackSchema defines the JSON schema for mentor feedback responses.
var FeedbackSchema = &llm.Schema{
	Name:        "mentor-feedback",
	Description: "Persona-voiced feedback and remediation plan for a submitted paper",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"persona": map[string]any{
				"type":        "string",
				"description": "Short mentor archetype name matched to the performance",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "2-4 sentence analysis of this attempt",
			},
			"motivation": map[string]any{
				"type":        "string",
				"description": "1-2 sentence encouragement tied to streak and target",
			},
			"plan": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic": map[string]any{
							"type": "string",
						},
						"summary": map[string]any{
							"type":        "string",
							"description": "One sentence on what to study and how",
						},
						"priority": map[string]any{
							"type": "string",
							"enum": []any{"High", "Medium"},
						},
					},
					"required":             []any{"topic", "summary", "priority"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"persona", "feedback", "motivation", "plan"},
		"additionalProperties": false,
	},
}
