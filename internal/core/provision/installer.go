package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vellum.dev/jsonls/internal/core/domain"
	"vellum.dev/jsonls/internal/core/ports"
	"vellum.dev/jsonls/internal/infrastructure/logging"
)

// Installer materializes a server binary for a resolved version: it reuses an
// existing installation when the entry point is already on disk, installs via
// the package transport otherwise, and emits the launch descriptor.
type Installer struct {
	transport  ports.PackageTransport
	pkg        string
	entryPoint string
	logger     *logging.Logger
}

// NewInstaller creates an Installer for the given package and its fixed
// relative entry point
func NewInstaller(transport ports.PackageTransport, pkg, entryPoint string, logger *logging.Logger) *Installer {
	return &Installer{
		transport:  transport,
		pkg:        pkg,
		entryPoint: entryPoint,
		logger:     logger,
	}
}

// EnsureBinary ensures dir contains an installation of the package at the
// given version and returns its launch descriptor.
//
// The check-then-install sequence is not transactional: concurrent calls
// targeting the same directory may both decide to install. Installs are
// idempotent at the transport layer, so the race is benign and no locking is
// used. A call cancelled mid-install leaves the partial directory in place;
// the next call either finds a complete entry point and skips, or reinstalls.
func (i *Installer) EnsureBinary(ctx context.Context, version domain.VersionToken, dir string) (domain.LaunchDescriptor, error) {
	entryPath := filepath.Join(dir, filepath.FromSlash(i.entryPoint))

	if _, err := os.Stat(entryPath); err != nil {
		opID := uuid.NewString()
		i.logger.Info("installing server package",
			zap.String("package", i.pkg),
			zap.String("version", version.Value()),
			zap.String("dir", dir),
			zap.String("op_id", opID),
		)
		if err := i.transport.Install(ctx, i.pkg, version, dir); err != nil {
			return domain.LaunchDescriptor{}, fmt.Errorf("installing %s@%s: %w: %w",
				i.pkg, version.Value(), domain.ErrInstallFailed, err)
		}
		i.logger.Info("server package installed",
			zap.String("package", i.pkg),
			zap.String("version", version.Value()),
			zap.String("op_id", opID),
		)
	} else {
		i.logger.Debug("server entry point already present, skipping install",
			zap.String("path", entryPath),
		)
	}

	runtimePath, err := i.transport.BinaryPath(ctx)
	if err != nil {
		return domain.LaunchDescriptor{}, fmt.Errorf("locating runtime executable: %w: %w",
			domain.ErrRuntimeUnavailable, err)
	}

	descriptor, err := domain.NewLaunchDescriptor(runtimePath, launchArguments(entryPath))
	if err != nil {
		return domain.LaunchDescriptor{}, fmt.Errorf("building launch descriptor: %w: %w",
			domain.ErrRuntimeUnavailable, err)
	}
	return descriptor, nil
}

// launchArguments builds the argument vector used to start the server from
// its entry point.
func launchArguments(entryPath string) []string {
	return []string{entryPath, "--stdio"}
}
