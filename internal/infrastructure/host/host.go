// Package host provides the editor-side collaborators the adapter consumes:
// well-known configuration file locations, settings and keymap schema
// generation, the action registry, and the language catalog.
package host

import "vellum.dev/jsonls/internal/core/ports"

// NewHost bundles the default host capabilities for a configuration request.
func NewHost(experimental bool) ports.Host {
	return ports.Host{
		Settings:  NewSchemaStore(),
		Actions:   DefaultActions(),
		Context:   NewContext(experimental),
		Languages: DefaultCatalog(),
	}
}
