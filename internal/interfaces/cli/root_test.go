package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	rootCmd := NewRootCommand(newTestContainer(t, &stubTransport{}))

	var names []string
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "install")
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "dashboard")
	assert.Contains(t, names, "doctor")
}

func TestConfigCommandWiring(t *testing.T) {
	configCmd := NewConfigCommand(newTestContainer(t, &stubTransport{}))

	var names []string
	for _, sub := range configCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Equal(t, []string{"describe", "init-options", "paths", "workspace"}, names)
}

func TestContainerDirFlagOverride(t *testing.T) {
	container := newTestContainer(t, &stubTransport{binaryPath: "/usr/bin/node"})
	override := t.TempDir()

	rootCmd := NewRootCommand(container)
	rootCmd.SetArgs([]string{"status", "--container-dir", override})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, override, container.Config.Install.ContainerDir)
}

func TestExperimentalFlagOverride(t *testing.T) {
	container := newTestContainer(t, &stubTransport{binaryPath: "/usr/bin/node"})
	require.False(t, container.Host.Context.IsExperimentalMode())

	rootCmd := NewRootCommand(container)
	rootCmd.SetArgs([]string{"status", "--experimental"})
	require.NoError(t, rootCmd.Execute())

	assert.True(t, container.Host.Context.IsExperimentalMode())
	assert.True(t, container.Config.Host.Experimental)
}
