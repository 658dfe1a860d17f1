// Package adapter exposes the public surface of the JSON language server
// integration: identity, binary provisioning, and configuration payloads.
package adapter

import (
	"context"

	"vellum.dev/jsonls/internal/core/configuration"
	"vellum.dev/jsonls/internal/core/domain"
	"vellum.dev/jsonls/internal/core/ports"
	"vellum.dev/jsonls/internal/core/provision"
	"vellum.dev/jsonls/internal/infrastructure/logging"
)

const (
	// ServerName identifies the language server to the host.
	ServerName = "json-language-server"

	// ShortName is the compact display name shown in status UI.
	ShortName = "json"

	// PackageName is the upstream package that ships the server.
	PackageName = "vscode-json-languageserver"

	// ServerEntryPoint is the server's launch script, relative to the
	// directory the package is installed into.
	ServerEntryPoint = "node_modules/vscode-json-languageserver/bin/vscode-json-languageserver"
)

// JSONAdapter bundles the provisioning lifecycle and configuration builders
// behind the surface the host consumes.
type JSONAdapter struct {
	resolver  *provision.Resolver
	installer *provision.Installer
	cache     *provision.Cache
	builder   *configuration.Builder
}

// New wires a JSONAdapter over the given package transport and host paths.
func New(transport ports.PackageTransport, paths ports.HostPaths, logger *logging.Logger) *JSONAdapter {
	return &JSONAdapter{
		resolver:  provision.NewResolver(transport, PackageName, logger),
		installer: provision.NewInstaller(transport, PackageName, ServerEntryPoint, logger),
		cache:     provision.NewCache(transport, ServerEntryPoint, logger),
		builder:   configuration.NewBuilder(paths, logger),
	}
}

// Name returns the server's full identifier.
func (a *JSONAdapter) Name() string { return ServerName }

// ShortName returns the compact display name.
func (a *JSONAdapter) ShortName() string { return ShortName }

// FetchLatestVersion resolves the latest published server version.
func (a *JSONAdapter) FetchLatestVersion(ctx context.Context) (domain.VersionToken, error) {
	return a.resolver.Resolve(ctx)
}

// FetchServerBinary materializes a launchable server binary for the given
// version inside containerDir, installing it first when missing.
func (a *JSONAdapter) FetchServerBinary(ctx context.Context, version domain.VersionToken, containerDir string) (domain.LaunchDescriptor, error) {
	return a.installer.EnsureBinary(ctx, version, containerDir)
}

// CachedServerBinary returns a descriptor for the most recent complete
// install under containerDir, if any.
func (a *JSONAdapter) CachedServerBinary(ctx context.Context, containerDir string) (domain.LaunchDescriptor, bool) {
	return a.cache.FindCached(ctx, containerDir)
}

// InstallationTestBinary reports the binary a self-test should launch. Same
// contract as CachedServerBinary.
func (a *JSONAdapter) InstallationTestBinary(ctx context.Context, containerDir string) (domain.LaunchDescriptor, bool) {
	return a.cache.FindCached(ctx, containerDir)
}

// InitializationOptions returns the static startup payload.
func (a *JSONAdapter) InitializationOptions() map[string]any {
	return a.builder.InitializationOptions()
}

// WorkspaceConfiguration builds the per-workspace payload from live host
// state.
func (a *JSONAdapter) WorkspaceConfiguration(workspaceRoot string, host ports.Host) map[string]any {
	return a.builder.WorkspaceConfiguration(workspaceRoot, host)
}

// LanguageIDs maps host language names to the identifiers the server expects.
// JSONC covers the comment-tolerant dialect used by editor configuration
// files.
func (a *JSONAdapter) LanguageIDs() map[string]string {
	return map[string]string{
		"JSON": "jsonc",
	}
}
