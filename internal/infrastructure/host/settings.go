package host

import "vellum.dev/jsonls/internal/core/ports"

// SchemaStore generates the JSON schemas that describe the editor's own
// configuration files.
type SchemaStore struct{}

var _ ports.SettingsStore = (*SchemaStore)(nil)

// NewSchemaStore creates a SchemaStore.
func NewSchemaStore() *SchemaStore { return &SchemaStore{} }

// JSONSchema generates the settings-file schema. Every known language gets an
// override block, and experimental-only properties appear only when the host
// runs in experimental mode.
func (s *SchemaStore) JSONSchema(params ports.SchemaParams) map[string]any {
	languageOverrides := make(map[string]any, len(params.LanguageNames))
	for _, name := range params.LanguageNames {
		languageOverrides[name] = map[string]any{
			"type":        "object",
			"description": "Settings overrides for " + name + " files.",
			"properties": map[string]any{
				"tab_size": map[string]any{
					"type":    "integer",
					"minimum": 1,
				},
				"formatter": map[string]any{
					"type": "string",
				},
				"format_on_save": map[string]any{
					"type": "string",
					"enum": []string{"on", "off"},
				},
			},
		}
	}

	properties := map[string]any{
		"theme": map[string]any{
			"type": "string",
		},
		"tab_size": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"format_on_save": map[string]any{
			"type": "string",
			"enum": []string{"on", "off"},
		},
		"languages": map[string]any{
			"type":       "object",
			"properties": languageOverrides,
		},
	}

	if params.ExperimentalMode {
		properties["experimental"] = map[string]any{
			"type":        "object",
			"description": "Unstable settings, subject to change without notice.",
			"additionalProperties": map[string]any{
				"type": []string{"string", "number", "boolean", "object", "array", "null"},
			},
		}
	}

	return map[string]any{
		"$schema":    "http://json-schema.org/draft-07/schema#",
		"title":      "Vellum Settings",
		"type":       "object",
		"properties": properties,
	}
}
