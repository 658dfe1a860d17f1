package ports

// SchemaParams parameterizes settings-schema generation.
type SchemaParams struct {
	// LanguageNames is the set of language display names the host knows
	// about, used for per-language override properties.
	LanguageNames []string

	// ExperimentalMode gates schema properties that are only meaningful in
	// experimental (staff) builds.
	ExperimentalMode bool
}

// SettingsStore is the host's schema authority: it generates the JSON schema
// documents for the editor's settings and keymap files.
type SettingsStore interface {
	// JSONSchema generates the settings-file schema for the given parameters.
	JSONSchema(params SchemaParams) map[string]any

	// KeymapSchema generates the keymap-file schema; binding values are
	// constrained to the given action names.
	KeymapSchema(actionNames []string) map[string]any
}

// ActionRegistry exposes the names of all actions currently registered with
// the host.
type ActionRegistry interface {
	AllActionNames() []string
}

// HostContext exposes per-call host state.
type HostContext interface {
	IsExperimentalMode() bool
}

// LanguageCatalog exposes the display names of the languages the host knows.
type LanguageCatalog interface {
	LanguageNames() []string
}

// HostPaths carries the host's well-known configuration file locations. They
// are compile-time constants of the host, read-only to this unit.
type HostPaths struct {
	// SettingsFile is the absolute path of the primary settings file.
	SettingsFile string

	// KeymapFile is the absolute path of the keymap file.
	KeymapFile string

	// LocalSettingsRelative is the workspace-relative path of per-project
	// local settings.
	LocalSettingsRelative string
}

// Host bundles the capabilities a configuration request reads from the host.
// It is passed per call and never stored, so every request observes the
// host's current state rather than a stale snapshot.
type Host struct {
	Settings  SettingsStore
	Actions   ActionRegistry
	Context   HostContext
	Languages LanguageCatalog
}
