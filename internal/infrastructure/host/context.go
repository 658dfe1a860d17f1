package host

import "vellum.dev/jsonls/internal/core/ports"

// Context reports host-environment state. It is handed to the configuration
// builder per call rather than stored by it.
type Context struct {
	experimental bool
}

var _ ports.HostContext = (*Context)(nil)

// NewContext creates a Context with the given experimental-mode flag.
func NewContext(experimental bool) *Context {
	return &Context{experimental: experimental}
}

// IsExperimentalMode reports whether experimental-only behavior is enabled.
func (c *Context) IsExperimentalMode() bool { return c.experimental }
