package domain

import (
	"fmt"
	"strings"
)

// VersionToken is a value object identifying a published package version.
// The string is opaque: no ordering semantics are assumed beyond what the
// upstream registry reports.
type VersionToken struct {
	value string
}

// NewVersionToken creates a VersionToken with validation
func NewVersionToken(value string) (VersionToken, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return VersionToken{}, fmt.Errorf("version cannot be empty")
	}
	if strings.ContainsAny(trimmed, "/\\") {
		return VersionToken{}, fmt.Errorf("version %q contains path separators", value)
	}
	return VersionToken{value: trimmed}, nil
}

// Value returns the string value of the VersionToken
func (v VersionToken) Value() string {
	return v.value
}

// String implements the Stringer interface
func (v VersionToken) String() string {
	return v.value
}

// IsZero reports whether the token is the zero value
func (v VersionToken) IsZero() bool {
	return v.value == ""
}
