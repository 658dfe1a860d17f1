// Package di wires the application dependency graph.
package di

import (
	"context"
	"fmt"

	"vellum.dev/jsonls/internal/core/adapter"
	"vellum.dev/jsonls/internal/infrastructure/config"
	"vellum.dev/jsonls/internal/infrastructure/host"
	"vellum.dev/jsonls/internal/infrastructure/logging"
	"vellum.dev/jsonls/internal/infrastructure/node"
	"vellum.dev/jsonls/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	Registry *node.RegistryClient
	Runtime  *node.Runtime

	// Core
	Adapter *adapter.JSONAdapter

	// CLI
	CLIContainer *cli.CLIContainer

	// Logger
	Logger *logging.Logger
}

// NewContainer creates and configures the dependency injection container
func NewContainer() (*Container, error) {
	container := &Container{}

	if err := container.initializeComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	return container, nil
}

// initializeComponents initializes all components with proper dependencies
func (c *Container) initializeComponents() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	c.Config = cfg

	// 2. Initialize logging
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	c.Logger = logger

	// 3. Initialize infrastructure components
	c.Registry = node.NewRegistryClient(cfg.Registry.URL, cfg.Registry.RequestTimeout, cfg.Registry.RetryMax, logger)
	c.Runtime = node.NewRuntime(c.Registry, logger)

	// 4. Initialize the adapter over the host's well-known paths
	paths := host.DefaultPaths()
	c.Adapter = adapter.New(c.Runtime, paths, logger)

	// 5. Initialize the CLI container
	c.CLIContainer = &cli.CLIContainer{
		Config:    cfg,
		Adapter:   c.Adapter,
		Transport: c.Runtime,
		Host:      host.NewHost(cfg.Host.Experimental),
		Paths:     paths,
		Logger:    logger,
	}

	c.Logger.Debug("dependency injection container initialized")
	return nil
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.Logger != nil {
		c.Logger.Debug("shutting down")
		// Flush buffered log entries; sync errors on stderr are harmless.
		_ = c.Logger.Sync()
	}
	return nil
}

// HealthCheck performs a health check of all components
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.Config == nil {
		return fmt.Errorf("configuration not initialized")
	}
	if c.Registry == nil || c.Runtime == nil {
		return fmt.Errorf("package transport not initialized")
	}
	if c.Adapter == nil {
		return fmt.Errorf("adapter not initialized")
	}
	if _, err := c.Runtime.BinaryPath(ctx); err != nil {
		return fmt.Errorf("node runtime unavailable: %w", err)
	}
	return nil
}
