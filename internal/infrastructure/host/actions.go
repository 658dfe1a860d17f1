package host

import (
	"sync"

	"vellum.dev/jsonls/internal/core/ports"
)

// ActionRegistry records editor action names in registration order. The
// keymap schema reads it on every build, so actions registered late still
// show up in later payloads.
type ActionRegistry struct {
	mu    sync.RWMutex
	seen  map[string]struct{}
	order []string
}

var _ ports.ActionRegistry = (*ActionRegistry)(nil)

// NewActionRegistry creates an empty registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{seen: make(map[string]struct{})}
}

// Register adds an action name. Re-registering keeps the original position.
func (r *ActionRegistry) Register(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[name]; ok {
		return
	}
	r.seen[name] = struct{}{}
	r.order = append(r.order, name)
}

// AllActionNames returns the registered names in registration order.
func (r *ActionRegistry) AllActionNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// DefaultActions returns a registry preloaded with the editor's built-in
// actions.
func DefaultActions() *ActionRegistry {
	registry := NewActionRegistry()
	for _, name := range []string{
		"editor.copy",
		"editor.cut",
		"editor.paste",
		"editor.undo",
		"editor.redo",
		"editor.select_all",
		"editor.find",
		"editor.find_next",
		"editor.replace",
		"editor.format_document",
		"editor.toggle_comment",
		"editor.rename_symbol",
		"editor.go_to_definition",
		"workspace.open_file",
		"workspace.open_settings",
		"workspace.open_keymap",
		"workspace.toggle_sidebar",
		"workspace.close_window",
	} {
		registry.Register(name)
	}
	return registry
}
