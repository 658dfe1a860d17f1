package host

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vellum.dev/jsonls/internal/core/ports"
)

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()

	assert.True(t, strings.HasSuffix(paths.SettingsFile, filepath.Join("vellum", "settings.json")), "got %q", paths.SettingsFile)
	assert.True(t, strings.HasSuffix(paths.KeymapFile, filepath.Join("vellum", "keymap.json")), "got %q", paths.KeymapFile)
	assert.Equal(t, ".vellum/settings.json", paths.LocalSettingsRelative)
}

func TestJSONSchemaLanguageOverrides(t *testing.T) {
	schema := NewSchemaStore().JSONSchema(ports.SchemaParams{LanguageNames: []string{"JSON", "Go"}})

	properties := schema["properties"].(map[string]any)
	languages := properties["languages"].(map[string]any)
	overrides := languages["properties"].(map[string]any)

	assert.Contains(t, overrides, "JSON")
	assert.Contains(t, overrides, "Go")
	assert.NotContains(t, properties, "experimental")
}

func TestJSONSchemaExperimentalGate(t *testing.T) {
	schema := NewSchemaStore().JSONSchema(ports.SchemaParams{ExperimentalMode: true})

	properties := schema["properties"].(map[string]any)
	assert.Contains(t, properties, "experimental")
}

func TestKeymapSchemaConstrainsActions(t *testing.T) {
	actions := []string{"editor.copy", "editor.paste"}

	schema := NewSchemaStore().KeymapSchema(actions)

	items := schema["items"].(map[string]any)
	bindings := items["properties"].(map[string]any)["bindings"].(map[string]any)
	binding := bindings["additionalProperties"].(map[string]any)
	assert.Equal(t, []string{"editor.copy", "editor.paste"}, binding["enum"])

	// The schema owns its copy of the enum.
	actions[0] = "mutated"
	assert.Equal(t, []string{"editor.copy", "editor.paste"}, binding["enum"])
}

func TestKeymapSchemaWithoutActions(t *testing.T) {
	schema := NewSchemaStore().KeymapSchema(nil)

	items := schema["items"].(map[string]any)
	binding := items["properties"].(map[string]any)["bindings"].(map[string]any)["additionalProperties"].(map[string]any)
	assert.NotContains(t, binding, "enum")
}

func TestActionRegistryOrderAndDedup(t *testing.T) {
	registry := NewActionRegistry()
	registry.Register("editor.copy")
	registry.Register("editor.paste")
	registry.Register("editor.copy")

	assert.Equal(t, []string{"editor.copy", "editor.paste"}, registry.AllActionNames())
}

func TestActionRegistryReturnsCopy(t *testing.T) {
	registry := NewActionRegistry()
	registry.Register("editor.copy")

	names := registry.AllActionNames()
	names[0] = "mutated"

	assert.Equal(t, []string{"editor.copy"}, registry.AllActionNames())
}

func TestActionRegistryConcurrentRegister(t *testing.T) {
	registry := NewActionRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			registry.Register(fmt.Sprintf("editor.action%d", n))
		}(i)
	}
	wg.Wait()

	assert.Len(t, registry.AllActionNames(), 8)
}

func TestDefaultActions(t *testing.T) {
	names := DefaultActions().AllActionNames()

	assert.Contains(t, names, "editor.copy")
	assert.Contains(t, names, "workspace.open_settings")
	assert.Contains(t, names, "workspace.open_keymap")
}

func TestCatalogReturnsCopy(t *testing.T) {
	catalog := NewCatalog("JSON")

	names := catalog.LanguageNames()
	names[0] = "mutated"

	assert.Equal(t, []string{"JSON"}, catalog.LanguageNames())
}

func TestDefaultCatalog(t *testing.T) {
	names := DefaultCatalog().LanguageNames()

	assert.Contains(t, names, "JSON")
	assert.Contains(t, names, "JSONC")
}

func TestNewHostBundle(t *testing.T) {
	bundle := NewHost(true)

	require.NotNil(t, bundle.Settings)
	require.NotNil(t, bundle.Actions)
	require.NotNil(t, bundle.Languages)
	assert.True(t, bundle.Context.IsExperimentalMode())
}
