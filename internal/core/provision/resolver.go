// Package provision implements the binary-provisioning lifecycle for the
// language server: version resolution, conditional installation, and
// cached-binary discovery.
package provision

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"vellum.dev/jsonls/internal/core/domain"
	"vellum.dev/jsonls/internal/core/ports"
	"vellum.dev/jsonls/internal/infrastructure/logging"
)

// Resolver wraps the transport's latest-version lookup behind a typed result.
type Resolver struct {
	transport ports.PackageTransport
	pkg       string
	logger    *logging.Logger
}

// NewResolver creates a Resolver for the given package
func NewResolver(transport ports.PackageTransport, pkg string, logger *logging.Logger) *Resolver {
	return &Resolver{
		transport: transport,
		pkg:       pkg,
		logger:    logger,
	}
}

// Resolve asks the transport for the package's latest published version. A
// transport failure or a malformed version surfaces as ErrUpstreamUnavailable.
// No retry is performed here; retry policy belongs to the caller.
func (r *Resolver) Resolve(ctx context.Context) (domain.VersionToken, error) {
	raw, err := r.transport.LatestVersion(ctx, r.pkg)
	if err != nil {
		return domain.VersionToken{}, fmt.Errorf("resolving latest version of %s: %w: %w",
			r.pkg, domain.ErrUpstreamUnavailable, err)
	}

	version, err := domain.NewVersionToken(raw)
	if err != nil {
		return domain.VersionToken{}, fmt.Errorf("registry reported malformed version for %s: %w: %w",
			r.pkg, domain.ErrUpstreamUnavailable, err)
	}

	r.logger.Debug("resolved latest server version",
		zap.String("package", r.pkg),
		zap.String("version", version.Value()),
	)
	return version, nil
}
