package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	statusTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	statusReadyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	statusBrokenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// NewStatusCommand creates the status command
func NewStatusCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show installed server versions",
		Long: `Show the server versions installed under the container directory and
the launch command the editor would use right now.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, container)
		},
	}
}

// runStatus renders the install-root summary
func runStatus(cmd *cobra.Command, container *CLIContainer) error {
	root := container.Config.Install.ContainerDir

	fmt.Println(statusTitleStyle.Render(fmt.Sprintf("📦 %s", container.Adapter.Name())))
	fmt.Println(statusDimStyle.Render(fmt.Sprintf("Install root: %s", root)))
	if nodePath, err := container.Transport.BinaryPath(cmd.Context()); err != nil {
		fmt.Println(statusBrokenStyle.Render("Runtime: node not found in PATH"))
	} else {
		fmt.Println(statusDimStyle.Render(fmt.Sprintf("Runtime: %s", nodePath)))
	}
	fmt.Println("")

	states, err := scanInstallRoot(root)
	if err != nil {
		return fmt.Errorf("scanning install root: %w", err)
	}

	if len(states) == 0 {
		fmt.Println("No versions installed yet. Run 'jsonls install' to get started.")
		return nil
	}

	fmt.Printf("%-16s %-14s %s\n", "VERSION", "STATE", "MODIFIED")
	for _, state := range states {
		// Pad before styling so the ANSI codes do not skew the columns.
		label, style := "✅ ready", statusReadyStyle
		if !state.Ready {
			label, style = "❌ incomplete", statusBrokenStyle
		}
		modified := "-"
		if !state.Modified.IsZero() {
			modified = state.Modified.Format("2006-01-02 15:04")
		}
		fmt.Printf("%-16s %s %s\n", state.Version, style.Render(fmt.Sprintf("%-14s", label)), modified)
	}

	fmt.Println("")
	if descriptor, ok := container.Adapter.CachedServerBinary(cmd.Context(), root); ok {
		fmt.Println("Launch command:")
		fmt.Printf("  %s\n", descriptor)
	} else {
		fmt.Println(statusBrokenStyle.Render("No launchable install found."))
		fmt.Println("The most recent version directory is incomplete; run 'jsonls install' to repair it.")
	}

	return nil
}
