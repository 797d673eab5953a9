package papergen

import "github.com/adityakr/prepdrill/internal/llm"

// PaperSchema defines the JSON schema for generated mock papers.
var PaperSchema = &llm.Schema{
	Name:        "daily-paper",
	Description: "A full daily mock paper divided into syllabus sections",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"section": map[string]any{
							"type":        "string",
							"description": "Syllabus section this question belongs to",
						},
						"text": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "Must match one of the options verbatim",
						},
						"is_verified_source": map[string]any{
							"type":        "boolean",
							"description": "True when the fact traces to a verified source",
						},
						"trap_explanation": map[string]any{
							"type":        "string",
							"description": "The distractor pattern this question uses",
						},
					},
					"required": []any{
						"section", "text", "options", "correct_answer",
						"is_verified_source", "trap_explanation",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
