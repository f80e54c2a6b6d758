package domain

import (
	"github.com/prabhanjangururaj/records-vault/internal/errors"
)

// Authentication-specific error definitions.
var (
	// ErrInvalidCredentials indicates the username or password is wrong.
	// Deliberately indistinguishable between the two cases.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidToken indicates the bearer token is missing, malformed,
	// expired, or signed with the wrong key.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrRoleNotAllowed indicates the authenticated user's role does not
	// permit the operation.
	ErrRoleNotAllowed = errors.Wrap(errors.ErrForbidden, "role not allowed")
)
