package provision

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vellum.dev/jsonls/internal/core/domain"
	"vellum.dev/jsonls/internal/infrastructure/logging"
)

func TestResolverResolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		reported      string
		transportErr  error
		expectedValue string
		expectUpErr   bool
	}{
		{
			name:          "latest version resolved",
			reported:      "1.83.0",
			expectedValue: "1.83.0",
		},
		{
			name:          "reported version is trimmed",
			reported:      " 1.83.0\n",
			expectedValue: "1.83.0",
		},
		{
			name:         "transport failure",
			transportErr: fmt.Errorf("dial tcp: connection refused"),
			expectUpErr:  true,
		},
		{
			name:        "empty version is malformed",
			reported:    "",
			expectUpErr: true,
		},
		{
			name:        "version with path separator is malformed",
			reported:    "1.2.3/extra",
			expectUpErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transport := new(MockPackageTransport)
			transport.On("LatestVersion", ctx, "fake-json-server").
				Return(tc.reported, tc.transportErr).
				Once()

			resolver := NewResolver(transport, "fake-json-server", logging.NewNop())

			version, err := resolver.Resolve(ctx)
			if tc.expectUpErr {
				assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
				assert.True(t, version.IsZero())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedValue, version.Value())
			}
			transport.AssertExpectations(t)
		})
	}
}

func TestResolverDoesNotRetry(t *testing.T) {
	ctx := context.Background()

	transport := new(MockPackageTransport)
	transport.On("LatestVersion", ctx, "fake-json-server").
		Return("", fmt.Errorf("timeout")).
		Once()

	resolver := NewResolver(transport, "fake-json-server", logging.NewNop())

	_, err := resolver.Resolve(ctx)
	assert.Error(t, err)
	transport.AssertNumberOfCalls(t, "LatestVersion", 1)
}
