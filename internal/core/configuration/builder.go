// Package configuration assembles the JSON payloads the language server
// consumes: static initialization options sent once at startup, and workspace
// configuration rebuilt from live host state whenever the server asks for it.
package configuration

import (
	"go.uber.org/zap"

	"vellum.dev/jsonls/internal/core/domain"
	"vellum.dev/jsonls/internal/core/ports"
	"vellum.dev/jsonls/internal/infrastructure/logging"
)

// Builder produces configuration payloads for the language server. It holds
// only the host's well-known file paths; everything dynamic arrives through
// the per-call host bundle.
type Builder struct {
	paths  ports.HostPaths
	logger *logging.Logger
}

// NewBuilder creates a Builder over the host's configuration file paths.
func NewBuilder(paths ports.HostPaths, logger *logging.Logger) *Builder {
	return &Builder{paths: paths, logger: logger}
}

// InitializationOptions returns the static startup payload. The server takes
// over document formatting for the files it matches.
func (b *Builder) InitializationOptions() map[string]any {
	return map[string]any{
		"provideFormatter": true,
	}
}

// WorkspaceConfiguration builds the per-workspace payload: formatting enabled
// plus the schema bindings for the host's own configuration files. Host state
// is read through host on every call, never cached, so actions or languages
// registered between calls are always reflected.
//
// The binding order is fixed: settings schema first, keymap schema second.
// The server applies the first binding whose file match succeeds.
func (b *Builder) WorkspaceConfiguration(workspaceRoot string, host ports.Host) map[string]any {
	params := ports.SchemaParams{
		LanguageNames:    host.Languages.LanguageNames(),
		ExperimentalMode: host.Context.IsExperimentalMode(),
	}
	actionNames := host.Actions.AllActionNames()

	b.logger.Debug("building workspace configuration",
		zap.String("workspace_root", workspaceRoot),
		zap.Int("languages", len(params.LanguageNames)),
		zap.Int("actions", len(actionNames)),
		zap.Bool("experimental", params.ExperimentalMode),
	)

	bindings := []domain.SchemaBinding{
		{
			FileMatch: []string{
				SchemaFileMatch(b.paths.SettingsFile),
				b.paths.LocalSettingsRelative,
			},
			Schema: host.Settings.JSONSchema(params),
		},
		{
			FileMatch: []string{SchemaFileMatch(b.paths.KeymapFile)},
			Schema:    host.Settings.KeymapSchema(actionNames),
		},
	}

	return map[string]any{
		"json": map[string]any{
			"format": map[string]any{
				"enable": true,
			},
			"schemas": bindings,
		},
	}
}
