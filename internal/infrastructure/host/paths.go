package host

import (
	"os"
	"path/filepath"

	"vellum.dev/jsonls/internal/core/ports"
)

const (
	configDirName    = "vellum"
	settingsFileName = "settings.json"
	keymapFileName   = "keymap.json"

	// LocalSettingsRelativePath is the workspace-relative location of
	// per-project settings overrides.
	LocalSettingsRelativePath = ".vellum/settings.json"
)

// ConfigRoot returns the directory holding the editor's configuration files.
func ConfigRoot() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, configDirName)
}

// DefaultPaths returns the editor's well-known configuration file locations.
func DefaultPaths() ports.HostPaths {
	root := ConfigRoot()
	return ports.HostPaths{
		SettingsFile:          filepath.Join(root, settingsFileName),
		KeymapFile:            filepath.Join(root, keymapFileName),
		LocalSettingsRelative: LocalSettingsRelativePath,
	}
}
