package domain

import (
	"github.com/prabhanjangururaj/records-vault/internal/errors"
)

var (
	// ErrMissingAPIKey indicates the role has no DSM API key configured.
	ErrMissingAPIKey = errors.Wrap(errors.ErrConfiguration, "missing API key for role")

	// ErrMissingKeyID indicates a field has no DSM key ID configured at all.
	// Distinct from a placeholder key ID, which is a silent skip.
	ErrMissingKeyID = errors.Wrap(errors.ErrConfiguration, "missing key ID for field")

	// ErrAuthenticationFailed indicates the DSM session exchange was rejected
	// or returned no usable bearer token.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrUnauthorized, "dsm authentication failed")

	// ErrTransport indicates a batch call failed as a whole: network error,
	// timeout, or an unparseable response.
	ErrTransport = errors.Wrap(errors.ErrUnavailable, "dsm transport failure")

	// ErrSessionExpired indicates the DSM rejected the cached bearer token.
	// Absorbed by the orchestrator's single retry cycle, never surfaced.
	ErrSessionExpired = errors.Wrap(errors.ErrUnauthorized, "dsm session expired")
)
