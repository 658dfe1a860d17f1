package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"vellum.dev/jsonls/internal/core/domain"
	"vellum.dev/jsonls/internal/infrastructure/logging"
)

const testEntryPoint = "node_modules/fake-json-server/bin/fake-json-server"

// MockPackageTransport implements ports.PackageTransport for testing
type MockPackageTransport struct {
	mock.Mock
}

func (m *MockPackageTransport) LatestVersion(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockPackageTransport) Install(ctx context.Context, name string, version domain.VersionToken, dir string) error {
	args := m.Called(ctx, name, version, dir)
	return args.Error(0)
}

func (m *MockPackageTransport) BinaryPath(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// writeEntryPoint materializes the entry-point file the way a completed
// install would
func writeEntryPoint(t testing.TB, dir string) string {
	t.Helper()
	entryPath := filepath.Join(dir, filepath.FromSlash(testEntryPoint))
	require.NoError(t, os.MkdirAll(filepath.Dir(entryPath), 0o755))
	require.NoError(t, os.WriteFile(entryPath, []byte("#!/usr/bin/env node\n"), 0o755))
	return entryPath
}

func mustVersion(t testing.TB, raw string) domain.VersionToken {
	t.Helper()
	version, err := domain.NewVersionToken(raw)
	require.NoError(t, err)
	return version
}

func TestEnsureBinaryFreshInstall(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	version := mustVersion(t, "1.2.3")

	transport := new(MockPackageTransport)
	transport.On("Install", ctx, "fake-json-server", version, dir).
		Run(func(args mock.Arguments) {
			writeEntryPoint(t, dir)
		}).
		Return(nil).
		Once()
	transport.On("BinaryPath", ctx).Return("/usr/bin/node", nil).Once()

	installer := NewInstaller(transport, "fake-json-server", testEntryPoint, logging.NewNop())

	descriptor, err := installer.EnsureBinary(ctx, version, dir)
	require.NoError(t, err)

	expectedEntry := filepath.Join(dir, filepath.FromSlash(testEntryPoint))
	assert.Equal(t, "/usr/bin/node", descriptor.Path())
	assert.Equal(t, []string{expectedEntry, "--stdio"}, descriptor.Arguments())
	transport.AssertExpectations(t)
}

func TestEnsureBinaryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	version := mustVersion(t, "1.2.3")

	transport := new(MockPackageTransport)
	// The install transport call must happen at most once: the second
	// EnsureBinary short-circuits on the existence check.
	transport.On("Install", ctx, "fake-json-server", version, dir).
		Run(func(args mock.Arguments) {
			writeEntryPoint(t, dir)
		}).
		Return(nil).
		Once()
	transport.On("BinaryPath", ctx).Return("/usr/bin/node", nil).Twice()

	installer := NewInstaller(transport, "fake-json-server", testEntryPoint, logging.NewNop())

	first, err := installer.EnsureBinary(ctx, version, dir)
	require.NoError(t, err)

	second, err := installer.EnsureBinary(ctx, version, dir)
	require.NoError(t, err)

	assert.Equal(t, first.Path(), second.Path())
	assert.Equal(t, first.Arguments(), second.Arguments())
	transport.AssertExpectations(t)
	transport.AssertNumberOfCalls(t, "Install", 1)
}

func TestEnsureBinarySkipsInstallWhenEntryPointExists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	entryPath := writeEntryPoint(t, dir)

	// No Install expectation registered: any install call fails the test.
	transport := new(MockPackageTransport)
	transport.On("BinaryPath", ctx).Return("/usr/bin/node", nil).Once()

	installer := NewInstaller(transport, "fake-json-server", testEntryPoint, logging.NewNop())

	descriptor, err := installer.EnsureBinary(ctx, mustVersion(t, "9.9.9"), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{entryPath, "--stdio"}, descriptor.Arguments())
	transport.AssertExpectations(t)
	transport.AssertNotCalled(t, "Install")
}

func TestEnsureBinaryInstallFailure(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	version := mustVersion(t, "1.2.3")

	transport := new(MockPackageTransport)
	transport.On("Install", ctx, "fake-json-server", version, dir).
		Return(fmt.Errorf("registry returned 502")).
		Once()

	installer := NewInstaller(transport, "fake-json-server", testEntryPoint, logging.NewNop())

	descriptor, err := installer.EnsureBinary(ctx, version, dir)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
	assert.Contains(t, err.Error(), "registry returned 502")
	assert.True(t, descriptor.IsZero())
	transport.AssertExpectations(t)
	transport.AssertNotCalled(t, "BinaryPath")
}

func TestEnsureBinaryRuntimeUnavailable(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeEntryPoint(t, dir)

	transport := new(MockPackageTransport)
	transport.On("BinaryPath", ctx).Return("", fmt.Errorf("node not found in PATH")).Once()

	installer := NewInstaller(transport, "fake-json-server", testEntryPoint, logging.NewNop())

	descriptor, err := installer.EnsureBinary(ctx, mustVersion(t, "1.2.3"), dir)
	assert.ErrorIs(t, err, domain.ErrRuntimeUnavailable)
	assert.True(t, descriptor.IsZero())
	transport.AssertExpectations(t)
}
