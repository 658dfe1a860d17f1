package host

// KeymapSchema generates the keymap-file schema. Each keymap section pairs an
// optional focus context with a table of key chord to action bindings; the
// binding values are constrained to the given action names.
func (s *SchemaStore) KeymapSchema(actionNames []string) map[string]any {
	binding := map[string]any{
		"type":        "string",
		"description": "Action to invoke when the key chord is pressed.",
	}
	if len(actionNames) > 0 {
		binding["enum"] = append([]string(nil), actionNames...)
	}

	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title":   "Vellum Key Bindings",
		"type":    "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"context": map[string]any{
					"type":        "string",
					"description": "Focus context the bindings apply in; empty means everywhere.",
				},
				"bindings": map[string]any{
					"type":                 "object",
					"additionalProperties": binding,
				},
			},
			"required":             []string{"bindings"},
			"additionalProperties": false,
		},
	}
}
