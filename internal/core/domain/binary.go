package domain

import (
	"fmt"
	"strings"
)

// LaunchDescriptor describes how to start the language server process: the
// runtime executable to invoke and its ordered argument vector. Descriptors are
// immutable once constructed and are only built after the referenced entry
// point was confirmed to exist; callers must still tolerate the binary
// vanishing between construction and use.
type LaunchDescriptor struct {
	path      string
	arguments []string
}

// NewLaunchDescriptor creates a LaunchDescriptor with validation
func NewLaunchDescriptor(path string, arguments []string) (LaunchDescriptor, error) {
	if path == "" {
		return LaunchDescriptor{}, fmt.Errorf("executable path cannot be empty")
	}
	args := make([]string, len(arguments))
	copy(args, arguments)
	return LaunchDescriptor{path: path, arguments: args}, nil
}

// Path returns the absolute path of the runtime executable
func (d LaunchDescriptor) Path() string {
	return d.path
}

// Arguments returns a copy of the argument vector
func (d LaunchDescriptor) Arguments() []string {
	args := make([]string, len(d.arguments))
	copy(args, d.arguments)
	return args
}

// IsZero reports whether the descriptor is the zero value
func (d LaunchDescriptor) IsZero() bool {
	return d.path == ""
}

// String returns the full command line, suitable for display
func (d LaunchDescriptor) String() string {
	if d.IsZero() {
		return ""
	}
	return strings.Join(append([]string{d.path}, d.arguments...), " ")
}
