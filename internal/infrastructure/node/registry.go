// Package node talks to the npm ecosystem: the public registry for version
// metadata, and the local npm/node toolchain for installing and running the
// server package.
package node

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"vellum.dev/jsonls/internal/infrastructure/logging"
)

// RegistryClient fetches package metadata from an npm-compatible registry.
// Transient upstream failures are retried internally; callers see only the
// final outcome.
type RegistryClient struct {
	baseURL string
	client  *retryablehttp.Client
	logger  *logging.Logger
}

// NewRegistryClient creates a client for the registry at baseURL.
func NewRegistryClient(baseURL string, timeout time.Duration, retryMax int, logger *logging.Logger) *RegistryClient {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = timeout
	client.Logger = nil

	return &RegistryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

type distTagMetadata struct {
	Version string `json:"version"`
}

// LatestVersion returns the version published under the package's "latest"
// dist-tag. Scoped package names are escaped into a single path segment, as
// the registry expects.
func (c *RegistryClient) LatestVersion(ctx context.Context, pkg string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/latest", c.baseURL, url.PathEscape(pkg))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("querying registry for %s: %w", pkg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("registry returned status %d for %s", resp.StatusCode, pkg)
	}

	var meta distTagMetadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return "", fmt.Errorf("decoding registry response for %s: %w", pkg, err)
	}
	if meta.Version == "" {
		return "", fmt.Errorf("registry response for %s carries no version", pkg)
	}

	c.logger.Debug("registry reported latest version",
		zap.String("package", pkg),
		zap.String("version", meta.Version),
	)
	return meta.Version, nil
}
