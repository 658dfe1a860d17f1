package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaFileMatch(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "settings file under config root",
			path: "/home/dev/.config/vellum/settings.json",
			want: "vellum/settings.json",
		},
		{
			name: "keymap file under config root",
			path: "/home/dev/.config/vellum/keymap.json",
			want: "vellum/keymap.json",
		},
		{
			name: "deeply nested path keeps last two components",
			path: "/a/b/c/settings.json",
			want: "c/settings.json",
		},
		{
			name: "two components under root",
			path: "/a/settings.json",
			want: "a/settings.json",
		},
		{
			name: "relative path",
			path: "a/b/c.json",
			want: "b/c.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SchemaFileMatch(tt.path))
		})
	}
}

func TestSchemaFileMatchIsPure(t *testing.T) {
	first := SchemaFileMatch("/home/dev/.config/vellum/settings.json")
	second := SchemaFileMatch("/home/dev/.config/vellum/settings.json")
	assert.Equal(t, first, second)
}

func TestSchemaFileMatchPanicsWithoutTwoAncestors(t *testing.T) {
	for _, path := range []string{"/", "/settings.json", "settings.json", "."} {
		t.Run(path, func(t *testing.T) {
			assert.Panics(t, func() { SchemaFileMatch(path) })
		})
	}
}
