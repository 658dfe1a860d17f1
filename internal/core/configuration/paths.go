package configuration

import (
	"fmt"
	"path/filepath"
)

// SchemaFileMatch converts an absolute configuration file path into the
// file-match pattern served to the language server: the path relative to its
// grandparent directory. Matching on the trailing two components lets the
// server recognize the file no matter where the host is installed.
//
// The input must have at least two ancestor directories. Host configuration
// paths are fixed at startup, so a shorter path is a programming error and
// panics rather than returning an error.
func SchemaFileMatch(path string) string {
	parent := filepath.Dir(path)
	grandparent := filepath.Dir(parent)
	if parent == path || grandparent == parent {
		panic(fmt.Sprintf("configuration path %q needs at least two ancestor directories", path))
	}
	rel, err := filepath.Rel(grandparent, path)
	if err != nil {
		panic(fmt.Sprintf("relativizing configuration path %q: %v", path, err))
	}
	return filepath.ToSlash(rel)
}
