package topics

// feedSchemaDefinition is the JSON schema for the topic feed payload.
// Cross-field rules (the answer index pointing into answers) are checked
// during decoding; the schema pins down the shape.
var feedSchemaDefinition = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type": "string",
			},
			"desc": map[string]any{
				"type": "string",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type": "string",
						},
						"answer": map[string]any{
							"type":        "string",
							"pattern":     "^[0-9]+$",
							"description": "1-based index into answers, as a decimal string",
						},
						"answers": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 1,
						},
					},
					"required": []any{"text", "answer", "answers"},
				},
			},
		},
		"required": []any{"title", "desc", "questions"},
	},
}
