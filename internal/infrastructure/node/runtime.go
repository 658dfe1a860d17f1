package node

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"

	"vellum.dev/jsonls/internal/core/domain"
	"vellum.dev/jsonls/internal/core/ports"
	"vellum.dev/jsonls/internal/infrastructure/logging"
)

// Runtime implements the package transport over the local npm and node
// toolchain.
type Runtime struct {
	registry *RegistryClient
	logger   *logging.Logger

	nodeOnce sync.Once
	nodePath string
	nodeErr  error
}

var _ ports.PackageTransport = (*Runtime)(nil)

// NewRuntime creates a Runtime backed by the given registry client.
func NewRuntime(registry *RegistryClient, logger *logging.Logger) *Runtime {
	return &Runtime{
		registry: registry,
		logger:   logger,
	}
}

// LatestVersion resolves the package's latest published version through the
// registry.
func (r *Runtime) LatestVersion(ctx context.Context, pkg string) (string, error) {
	return r.registry.LatestVersion(ctx, pkg)
}

// Install runs npm to install pkg at the exact version, with dir as the npm
// working directory. Installing a version that is already present is safe,
// merely wasteful; npm resolves it to a no-op.
func (r *Runtime) Install(ctx context.Context, pkg string, version domain.VersionToken, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating install directory %s: %w", dir, err)
	}

	npm, err := exec.LookPath("npm")
	if err != nil {
		return fmt.Errorf("locating npm: %w", err)
	}

	r.logger.Info("installing server package",
		zap.String("package", pkg),
		zap.String("version", version.Value()),
		zap.String("dir", dir),
	)

	cmd := exec.CommandContext(ctx, npm, installArgs(pkg, version)...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("npm install %s@%s: %w: %s", pkg, version.Value(), err, msg)
		}
		return fmt.Errorf("npm install %s@%s: %w", pkg, version.Value(), err)
	}
	return nil
}

// installArgs builds the npm argument vector for an exact-version install.
func installArgs(pkg string, version domain.VersionToken) []string {
	return []string{
		"install",
		"--save-exact",
		"--no-audit",
		"--no-fund",
		"--loglevel", "error",
		fmt.Sprintf("%s@%s", pkg, version.Value()),
	}
}

// BinaryPath returns the node executable that runs the installed server. The
// PATH lookup happens once per process.
func (r *Runtime) BinaryPath(ctx context.Context) (string, error) {
	r.nodeOnce.Do(func() {
		r.nodePath, r.nodeErr = exec.LookPath("node")
	})
	if r.nodeErr != nil {
		return "", fmt.Errorf("locating node runtime: %w", r.nodeErr)
	}
	return r.nodePath, nil
}
