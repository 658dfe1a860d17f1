package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewVersionToken(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    string
	}{
		{
			name:     "plain semver",
			input:    "1.83.0",
			expected: "1.83.0",
		},
		{
			name:     "prerelease tag",
			input:    "2.0.0-next.3",
			expected: "2.0.0-next.3",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  1.2.3\n",
			expected: "1.2.3",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "whitespace only",
			input:       "   ",
			expectError: true,
		},
		{
			name:        "path separator",
			input:       "1.2.3/../../etc",
			expectError: true,
		},
		{
			name:        "backslash separator",
			input:       `1.2\3`,
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := NewVersionToken(tc.input)
			if tc.expectError {
				assert.Error(t, err)
				assert.True(t, token.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, token.Value())
			assert.Equal(t, tc.expected, token.String())
			assert.False(t, token.IsZero())
		})
	}
}

func TestNewLaunchDescriptor(t *testing.T) {
	t.Run("valid descriptor", func(t *testing.T) {
		desc, err := NewLaunchDescriptor("/usr/bin/node", []string{"/srv/entry", "--stdio"})
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/node", desc.Path())
		assert.Equal(t, []string{"/srv/entry", "--stdio"}, desc.Arguments())
		assert.False(t, desc.IsZero())
		assert.Equal(t, "/usr/bin/node /srv/entry --stdio", desc.String())
	})

	t.Run("empty path rejected", func(t *testing.T) {
		desc, err := NewLaunchDescriptor("", []string{"--stdio"})
		assert.Error(t, err)
		assert.True(t, desc.IsZero())
	})

	t.Run("nil arguments allowed", func(t *testing.T) {
		desc, err := NewLaunchDescriptor("/usr/bin/node", nil)
		require.NoError(t, err)
		assert.Empty(t, desc.Arguments())
		assert.Equal(t, "/usr/bin/node", desc.String())
	})
}

func TestLaunchDescriptorImmutability(t *testing.T) {
	source := []string{"/srv/entry", "--stdio"}
	desc, err := NewLaunchDescriptor("/usr/bin/node", source)
	require.NoError(t, err)

	// Mutating the source slice must not affect the descriptor.
	source[0] = "tampered"
	assert.Equal(t, []string{"/srv/entry", "--stdio"}, desc.Arguments())

	// Mutating a returned copy must not affect subsequent reads.
	got := desc.Arguments()
	got[1] = "tampered"
	assert.Equal(t, []string{"/srv/entry", "--stdio"}, desc.Arguments())
}

func TestLaunchDescriptorArgumentsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		args := rapid.SliceOfN(rapid.StringMatching(`[a-z/\-]{1,12}`), 0, 6).Draw(t, "args")
		desc, err := NewLaunchDescriptor("/usr/bin/node", args)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := desc.Arguments()
		if len(got) != len(args) {
			t.Fatalf("argument count changed: got %d, want %d", len(got), len(args))
		}
		for i := range args {
			if got[i] != args[i] {
				t.Fatalf("argument %d changed: got %q, want %q", i, got[i], args[i])
			}
		}
	})
}
