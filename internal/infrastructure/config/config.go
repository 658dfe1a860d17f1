// Package config loads runtime configuration from JSONLS_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"

	"vellum.dev/jsonls/internal/core/adapter"
)

// Config holds all application configuration.
type Config struct {
	Install  InstallConfig
	Registry RegistryConfig
	Logging  LogConfig
	Host     HostConfig
}

// InstallConfig controls where server versions are installed.
type InstallConfig struct {
	// ContainerDir is the root under which versioned installs live. Empty
	// means the per-user default.
	ContainerDir string `envconfig:"JSONLS_CONTAINER_DIR" default:""`
}

// RegistryConfig holds package registry access configuration.
type RegistryConfig struct {
	URL            string        `envconfig:"JSONLS_REGISTRY_URL" default:"https://registry.npmjs.org"`
	RequestTimeout time.Duration `envconfig:"JSONLS_REQUEST_TIMEOUT" default:"30s"`
	RetryMax       int           `envconfig:"JSONLS_RETRY_MAX" default:"3"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"JSONLS_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"JSONLS_LOG_DEV" default:"false"`
}

// HostConfig holds host-environment flags.
type HostConfig struct {
	Experimental bool `envconfig:"JSONLS_EXPERIMENTAL" default:"false"`
}

// Load loads configuration from JSONLS_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.Install.ContainerDir == "" {
		cfg.Install.ContainerDir = DefaultContainerDir()
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Install: InstallConfig{
			ContainerDir: DefaultContainerDir(),
		},
		Registry: RegistryConfig{
			URL:            "https://registry.npmjs.org",
			RequestTimeout: 30 * time.Second,
			RetryMax:       3,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Host: HostConfig{
			Experimental: false,
		},
	}
}

// DefaultContainerDir returns the per-user root for versioned server
// installs.
func DefaultContainerDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".vellum", "languages", adapter.ServerName)
}
