package catalog

// catalogSchema defines the JSON schema a catalog file must satisfy.
// Uniqueness of question IDs can't be expressed here; Parse checks it.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"category": map[string]any{
						"type": "string",
						"enum": []any{"table", "bar", "pie", "composite"},
					},
					"difficulty": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 3,
					},
					"target_seconds": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
				},
				"required":             []any{"id", "category", "difficulty"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}
