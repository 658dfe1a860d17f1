package host

import "vellum.dev/jsonls/internal/core/ports"

// Catalog lists the display names of the languages the editor knows about.
type Catalog struct {
	names []string
}

var _ ports.LanguageCatalog = (*Catalog)(nil)

// NewCatalog creates a Catalog over the given names.
func NewCatalog(names ...string) *Catalog {
	return &Catalog{names: append([]string(nil), names...)}
}

// LanguageNames returns the catalog's names.
func (c *Catalog) LanguageNames() []string {
	return append([]string(nil), c.names...)
}

// DefaultCatalog returns the editor's built-in language set.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		"JSON",
		"JSONC",
		"Go",
		"Markdown",
		"Plain Text",
		"TOML",
		"YAML",
	)
}
