package domain

// SchemaBinding pairs a list of file-match patterns with the JSON schema
// document that validates matching files. Ordering of bindings inside a
// workspace configuration is significant: the consuming server applies the
// first binding whose patterns match.
type SchemaBinding struct {
	FileMatch []string `json:"fileMatch"`
	Schema    any      `json:"schema"`
}
