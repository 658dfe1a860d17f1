package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"vellum.dev/jsonls/internal/core/adapter"
)

// NewConfigCommand creates the config command
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Render the payloads the language server receives",
		Long: `Render the configuration payloads this tool hands to the JSON language
server: the static initialization options sent at startup, and the workspace
configuration built from live host state.`,
	}

	configCmd.AddCommand(NewConfigInitOptionsCommand(container))
	configCmd.AddCommand(NewConfigWorkspaceCommand(container))
	configCmd.AddCommand(NewConfigDescribeCommand(container))
	configCmd.AddCommand(NewConfigPathsCommand(container))

	return configCmd
}

// NewConfigInitOptionsCommand creates the init-options subcommand
func NewConfigInitOptionsCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "init-options",
		Short: "Show the initialization options sent at server startup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(container.Adapter.InitializationOptions())
		},
	}
}

// NewConfigWorkspaceCommand creates the workspace subcommand
func NewConfigWorkspaceCommand(container *CLIContainer) *cobra.Command {
	var workspaceRoot string

	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Show the workspace configuration payload",
		Long: `Show the workspace configuration payload, including the settings and
keymap schema bindings. The payload reflects the host's action registry and
language catalog at the moment the command runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := workspaceRoot
			if root == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("determining workspace root: %w", err)
				}
				root = cwd
			}
			return printJSON(container.Adapter.WorkspaceConfiguration(root, container.Host))
		},
	}

	cmd.Flags().StringVar(&workspaceRoot, "root", "", "Workspace root (default is the current directory)")

	return cmd
}

// NewConfigDescribeCommand creates the describe subcommand
func NewConfigDescribeCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Show the server identity this tool manages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(map[string]any{
				"name":        container.Adapter.Name(),
				"shortName":   container.Adapter.ShortName(),
				"package":     adapter.PackageName,
				"entryPoint":  adapter.ServerEntryPoint,
				"languageIds": container.Adapter.LanguageIDs(),
			})
		},
	}
}

// NewConfigPathsCommand creates the paths subcommand
func NewConfigPathsCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show the file locations this tool works with",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Paths:")
			fmt.Printf("Settings file:       %s\n", container.Paths.SettingsFile)
			fmt.Printf("Keymap file:         %s\n", container.Paths.KeymapFile)
			fmt.Printf("Local settings:      %s (workspace-relative)\n", container.Paths.LocalSettingsRelative)
			fmt.Printf("Install root:        %s\n", container.Config.Install.ContainerDir)
			fmt.Printf("Package registry:    %s\n", container.Config.Registry.URL)
			return nil
		},
	}
}

// printJSON renders a payload as indented JSON on stdout
func printJSON(payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
