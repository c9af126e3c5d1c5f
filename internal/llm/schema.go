package llm

// BuildCardJSONSchema returns the JSON-Schema (draft 2020-12 subset) a model
// reply must satisfy, as a generic map. It constrains types but requires no
// fields: absences are repaired by ParseCardJSON defaults, not rejected.
func BuildCardJSONSchema() map[string]any {
	decimal := map[string]any{"type": "number"}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":       map[string]any{"type": "string"},
			"issuer":     map[string]any{"type": "string"},
			"annual_fee": map[string]any{"type": "number"},
			"signup_bonus": map[string]any{
				"type": []any{"object", "null"},
				"properties": map[string]any{
					"points_or_cash":    map[string]any{"type": "string"},
					"spend_requirement": decimal,
					"time_period_days":  decimal,
				},
			},
			"credits": map[string]any{
				"type": []any{"array", "null"},
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":      map[string]any{"type": "string"},
						"amount":    decimal,
						"frequency": map[string]any{"type": "string"},
						"notes":     map[string]any{"type": []any{"string", "null"}},
					},
				},
			},
		},
	}
}
