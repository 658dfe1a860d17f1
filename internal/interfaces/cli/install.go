package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"vellum.dev/jsonls/internal/core/domain"
)

// NewInstallCommand creates the install command
func NewInstallCommand(container *CLIContainer) *cobra.Command {
	var (
		versionFlag string
		offline     bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the JSON language server",
		Long: `Install the JSON language server under the container directory.

The latest version is resolved from the npm registry unless --version pins an
exact one. Installing a version that is already present is a fast no-op. When
the registry is unreachable or the installation fails, the most recent cached
install is used instead, so an earlier successful install keeps working
offline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), container, versionFlag, offline)
		},
	}

	cmd.Flags().StringVar(&versionFlag, "version", "", "Install an exact version instead of resolving the latest")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the registry and use the cached install")

	return cmd
}

// runInstall handles the install process
func runInstall(ctx context.Context, container *CLIContainer, versionFlag string, offline bool) error {
	root := container.Config.Install.ContainerDir

	if offline {
		descriptor, ok := container.Adapter.CachedServerBinary(ctx, root)
		if !ok {
			return fmt.Errorf("no cached install under %s", root)
		}
		fmt.Println("✅ Using cached install")
		printLaunch(descriptor)
		return nil
	}

	version, err := resolveInstallVersion(ctx, container, versionFlag)
	if err != nil {
		fmt.Printf("⚠️  Could not resolve a version: %v\n", err)
		return fallBackToCache(ctx, container, root, err)
	}

	fmt.Printf("🔄 Installing %s %s\n", container.Adapter.Name(), version.Value())
	descriptor, err := container.Adapter.FetchServerBinary(ctx, version, filepath.Join(root, version.Value()))
	if err != nil {
		fmt.Printf("⚠️  Installation failed: %v\n", err)
		return fallBackToCache(ctx, container, root, err)
	}

	fmt.Printf("✅ %s %s is ready\n", container.Adapter.Name(), version.Value())
	printLaunch(descriptor)
	return nil
}

// resolveInstallVersion returns the pinned version when given, otherwise asks
// the registry for the latest one.
func resolveInstallVersion(ctx context.Context, container *CLIContainer, versionFlag string) (domain.VersionToken, error) {
	if versionFlag != "" {
		return domain.NewVersionToken(versionFlag)
	}
	return container.Adapter.FetchLatestVersion(ctx)
}

// fallBackToCache degrades to the most recent cached install; only when that
// also comes up empty does the command fail.
func fallBackToCache(ctx context.Context, container *CLIContainer, root string, cause error) error {
	descriptor, ok := container.Adapter.CachedServerBinary(ctx, root)
	if !ok {
		return fmt.Errorf("no usable install: %w", cause)
	}

	fmt.Println("✅ Falling back to the most recent cached install")
	printLaunch(descriptor)
	return nil
}

func printLaunch(descriptor domain.LaunchDescriptor) {
	fmt.Println("")
	fmt.Println("Launch command:")
	fmt.Printf("  %s\n", descriptor)
}
