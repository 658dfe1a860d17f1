package cli

import (
	"os"
	"path/filepath"
	"time"

	"vellum.dev/jsonls/internal/core/adapter"
)

// installState describes one version directory under the install root.
type installState struct {
	Version  string
	Ready    bool
	Modified time.Time
}

// scanInstallRoot lists version directories under root in name order. A
// version is ready when its entry-point file exists. A missing root is an
// empty result, not an error.
func scanInstallRoot(root string) ([]installState, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var states []installState
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		var modified time.Time
		if info, err := entry.Info(); err == nil {
			modified = info.ModTime()
		}

		entryPath := filepath.Join(root, entry.Name(), filepath.FromSlash(adapter.ServerEntryPoint))
		_, statErr := os.Stat(entryPath)

		states = append(states, installState{
			Version:  entry.Name(),
			Ready:    statErr == nil,
			Modified: modified,
		})
	}
	return states, nil
}
