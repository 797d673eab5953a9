package classify

import (
	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/llm"
)

func categoryNames() []any {
	cats := exam.Categories()
	out := make([]any, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// SuggestionSchema defines the JSON schema for mistake classification responses.
var SuggestionSchema = &llm.Schema{
	Name:        "mistake-classification",
	Description: "Mistake category suggestions for a batch of incorrect answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"suggestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"answer_id": map[string]any{
							"type":        "string",
							"description": "The ID of the answer being classified, copied from the input",
						},
						"category": map[string]any{
							"type":        "string",
							"enum":        categoryNames(),
							"description": "The mistake category that best explains the error",
						},
						"reasoning": map[string]any{
							"type":        "string",
							"description": "Brief one-sentence explanation for the chosen category",
						},
					},
					"required":             []any{"answer_id", "category", "reasoning"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"suggestions"},
		"additionalProperties": false,
	},
}
