package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"vellum.dev/jsonls/internal/core/adapter"
	"vellum.dev/jsonls/internal/core/ports"
	"vellum.dev/jsonls/internal/infrastructure/config"
	"vellum.dev/jsonls/internal/infrastructure/host"
	"vellum.dev/jsonls/internal/infrastructure/logging"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	Config    *config.Config
	Adapter   *adapter.JSONAdapter
	Transport ports.PackageTransport
	Host      ports.Host
	Paths     ports.HostPaths
	Logger    *logging.Logger
}

// NewRootCommand represents the base command when called without any subcommands
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jsonls",
		Short: "Vellum JSON language server manager",
		Long: `jsonls provisions the JSON language server for the Vellum editor.

It resolves the latest release of ` + adapter.PackageName + ` from the npm
registry, installs it under a per-user container directory, and prints the
stdio launch command the editor uses to start the server. It can also render
the configuration payloads the server receives at startup and on workspace
configuration requests.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyFlagOverrides(cmd, container)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().String("container-dir", "", "Install root for server versions (default is $HOME/.vellum/languages/json-language-server)")
	rootCmd.PersistentFlags().Bool("experimental", false, "Enable the experimental-mode settings schema")

	rootCmd.AddCommand(NewInstallCommand(container))
	rootCmd.AddCommand(NewStatusCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))
	rootCmd.AddCommand(NewDashboardCommand(container))
	rootCmd.AddCommand(NewDoctorCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// applyFlagOverrides applies persistent flag values onto the container
func applyFlagOverrides(cmd *cobra.Command, container *CLIContainer) error {
	if cmd.Flags().Changed("container-dir") {
		dir, err := cmd.Flags().GetString("container-dir")
		if err != nil {
			return err
		}
		if dir == "" {
			return fmt.Errorf("container-dir cannot be empty")
		}
		container.Config.Install.ContainerDir = dir
	}

	if cmd.Flags().Changed("experimental") {
		experimental, err := cmd.Flags().GetBool("experimental")
		if err != nil {
			return err
		}
		container.Config.Host.Experimental = experimental
		container.Host = host.NewHost(experimental)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context, container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
