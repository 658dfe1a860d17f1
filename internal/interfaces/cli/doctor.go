package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
	"vellum.dev/jsonls/internal/core/adapter"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that this machine can provision the server",
		Long: `Check that this machine can provision and launch the JSON language
server.

This command will:
- Locate the node runtime and npm
- Query the package registry for the latest server version
- Look for a launchable cached install`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, container)
		},
	}
}

// runDoctor handles the environment checks
func runDoctor(cmd *cobra.Command, container *CLIContainer) error {
	ctx := cmd.Context()
	healthy := true

	fmt.Println("🔍 Environment check")
	fmt.Println("")

	fmt.Print("Locating node runtime... ")
	if nodePath, err := container.Transport.BinaryPath(ctx); err != nil {
		healthy = false
		fmt.Println("❌ Failed")
		fmt.Printf("  %v\n", err)
	} else {
		fmt.Printf("✅ %s\n", nodePath)
	}

	fmt.Print("Locating npm... ")
	if npmPath, err := exec.LookPath("npm"); err != nil {
		healthy = false
		fmt.Println("❌ Failed")
		fmt.Printf("  %v\n", err)
	} else {
		fmt.Printf("✅ %s\n", npmPath)
	}

	fmt.Print("Querying package registry... ")
	if version, err := container.Transport.LatestVersion(ctx, adapter.PackageName); err != nil {
		healthy = false
		fmt.Println("❌ Failed")
		fmt.Printf("  %v\n", err)
	} else {
		fmt.Printf("✅ latest is %s\n", version)
	}

	fmt.Print("Looking for a cached install... ")
	if descriptor, ok := container.Adapter.InstallationTestBinary(ctx, container.Config.Install.ContainerDir); ok {
		fmt.Println("✅ Found")
		fmt.Printf("  %s\n", descriptor)
	} else {
		fmt.Println("⚠️  None yet (run 'jsonls install')")
	}

	fmt.Println("")
	if !healthy {
		return fmt.Errorf("environment is not ready; fix the failed checks above")
	}

	fmt.Println("✅ Environment is ready")
	return nil
}
