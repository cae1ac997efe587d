package daily

import "github.com/ankitadas/tutorbuddy/internal/llm"

// WordSchema defines the JSON schema for word-of-the-day generation.
var WordSchema = &llm.Schema{
	Name:        "word-of-day",
	Description: "A vocabulary word of the day for a child aged 8-12",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word": map[string]any{
				"type":        "string",
				"description": "A single interesting English word, capitalized",
			},
			"definition": map[string]any{
				"type":        "string",
				"description": "A kid-friendly definition in one sentence",
			},
		},
		"required":             []any{"word", "definition"},
		"additionalProperties": false,
	},
}

// FactSchema defines the JSON schema for fact-of-the-day generation.
var FactSchema = &llm.Schema{
	Name:        "fact-of-day",
	Description: "A surprising true fact for a curious child aged 8-12",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fact": map[string]any{
				"type":        "string",
				"description": "One or two sentences, true and age-appropriate",
			},
		},
		"required":             []any{"fact"},
		"additionalProperties": false,
	},
}
