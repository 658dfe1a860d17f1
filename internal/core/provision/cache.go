package provision

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"vellum.dev/jsonls/internal/core/domain"
	"vellum.dev/jsonls/internal/core/ports"
	"vellum.dev/jsonls/internal/infrastructure/logging"
)

// Cache discovers previously installed server binaries under a container
// directory. It serves as the fast path when a binary is already installed
// and as the last-resort fallback when version resolution or a fresh install
// fails, degrading to whatever was last successfully installed.
type Cache struct {
	transport  ports.PackageTransport
	entryPoint string
	logger     *logging.Logger
}

// NewCache creates a Cache for installations with the given fixed relative
// entry point
func NewCache(transport ports.PackageTransport, entryPoint string, logger *logging.Logger) *Cache {
	return &Cache{
		transport:  transport,
		entryPoint: entryPoint,
		logger:     logger,
	}
}

// FindCached scans the immediate subdirectories of containerDir, takes the
// last one observed, and returns its launch descriptor if the entry point
// exists inside it. Enumeration order is os.ReadDir's name order; this is a
// deliberate approximation of "most recent", not a semantic version
// comparison, and no earlier directory is considered when the last one is
// incomplete.
//
// A miss is a normal outcome, reported as (zero, false) and logged at low
// severity, never as an error.
func (c *Cache) FindCached(ctx context.Context, containerDir string) (domain.LaunchDescriptor, bool) {
	entries, err := os.ReadDir(containerDir)
	if err != nil {
		c.logger.Debug("container directory not readable",
			zap.String("dir", containerDir),
			zap.Error(err),
		)
		return domain.LaunchDescriptor{}, false
	}

	var lastVersionDir string
	for _, entry := range entries {
		if entry.IsDir() {
			lastVersionDir = entry.Name()
		}
	}
	if lastVersionDir == "" {
		c.logger.Debug("no cached server versions",
			zap.String("dir", containerDir),
		)
		return domain.LaunchDescriptor{}, false
	}

	entryPath := filepath.Join(containerDir, lastVersionDir, filepath.FromSlash(c.entryPoint))
	if _, err := os.Stat(entryPath); err != nil {
		c.logger.Debug("cached version is missing its entry point",
			zap.String("version_dir", lastVersionDir),
			zap.String("path", entryPath),
		)
		return domain.LaunchDescriptor{}, false
	}

	runtimePath, err := c.transport.BinaryPath(ctx)
	if err != nil {
		c.logger.Debug("runtime unavailable for cached server",
			zap.Error(err),
		)
		return domain.LaunchDescriptor{}, false
	}

	descriptor, err := domain.NewLaunchDescriptor(runtimePath, launchArguments(entryPath))
	if err != nil {
		c.logger.Debug("cached descriptor rejected",
			zap.Error(err),
		)
		return domain.LaunchDescriptor{}, false
	}

	c.logger.Debug("found cached server binary",
		zap.String("version_dir", lastVersionDir),
		zap.String("entry_point", entryPath),
	)
	return descriptor, true
}
