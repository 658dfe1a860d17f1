package domain

import "errors"

// Failure classes of the provisioning lifecycle. Callers match them with
// errors.Is; the wrapped chain carries the underlying cause.
var (
	// ErrUpstreamUnavailable means version resolution failed because the
	// package registry could not be reached or returned malformed data.
	// Callers fall back to the binary cache.
	ErrUpstreamUnavailable = errors.New("upstream registry unavailable")

	// ErrInstallFailed means the package installation call failed. Callers
	// fall back to the binary cache; if that is also empty the integration
	// is unusable for the session.
	ErrInstallFailed = errors.New("server installation failed")

	// ErrRuntimeUnavailable means the transport cannot report its own
	// runtime executable path even though installation succeeded. Always
	// propagated, never swallowed.
	ErrRuntimeUnavailable = errors.New("server runtime unavailable")
)
