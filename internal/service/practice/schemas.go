package practice

import "github.com/lexidrill/lexidrill-backend/internal/provider"

// Response schemas in the Gemini vocabulary. The native path enforces them
// server-side; the OpenAI-compatible path only uses their presence to
// switch on JSON mode.

var wordPairSchema = &provider.Schema{
	Name: "word-pairs",
	Definition: map[string]any{
		"type": "ARRAY",
		"items": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"en": map[string]any{"type": "STRING"},
				"cn": map[string]any{"type": "STRING"},
			},
			"required": []any{"en", "cn"},
		},
	},
}

var contextQuestionSchema = &provider.Schema{
	Name: "context-questions",
	Definition: map[string]any{
		"type": "ARRAY",
		"items": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"sentence": map[string]any{"type": "STRING"},
				"answer":   map[string]any{"type": "STRING"},
			},
			"required": []any{"sentence", "answer"},
		},
	},
}

var grammarBundleSchema = &provider.Schema{
	Name: "grammar-bundle",
	Definition: map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"title":       map[string]any{"type": "STRING"},
					"usage":       map[string]any{"type": "STRING"},
					"examples":    map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
					"comparisons": map[string]any{"type": "STRING"},
				},
				"required": []any{"title", "usage", "examples", "comparisons"},
			},
			"fillQuestions": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"sentence": map[string]any{"type": "STRING"},
						"hint":     map[string]any{"type": "STRING"},
						"answer":   map[string]any{"type": "STRING"},
					},
					"required": []any{"sentence", "hint", "answer"},
				},
			},
			"choiceQuestions": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"sentence": map[string]any{"type": "STRING"},
						"options":  map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
						"answer":   map[string]any{"type": "STRING"},
					},
					"required": []any{"sentence", "options", "answer"},
				},
			},
		},
		"required": []any{"explanation", "fillQuestions", "choiceQuestions"},
	},
}
