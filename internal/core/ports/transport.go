package ports

import (
	"context"

	"vellum.dev/jsonls/internal/core/domain"
)

// PackageTransport is the host's opaque package-installation capability. The
// provisioning core never sees how packages are fetched or unpacked; it only
// asks for the latest published version, an installation into a directory, and
// the path of the runtime executable that can run installed packages.
//
// Implementations bound their own network calls (timeouts, retries); the core
// performs no retries of its own.
type PackageTransport interface {
	// LatestVersion returns the latest published version of the named package.
	LatestVersion(ctx context.Context, name string) (string, error)

	// Install installs name at the given version into dir. Installing a
	// version that is already present must be safe (idempotent, merely
	// wasteful).
	Install(ctx context.Context, name string, version domain.VersionToken, dir string) error

	// BinaryPath returns the path of the runtime executable used to launch
	// installed packages.
	BinaryPath(ctx context.Context) (string, error)
}
