// Package domain defines the authentication domain model. Users are static
// operator-provisioned accounts loaded from configuration; each carries the
// access role that drives the tokenization field policy.
package domain

import (
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// User is a provisioned account.
type User struct {
	// Username is the unique login name.
	Username string `json:"username"`
	// PasswordHash is the Argon2id hash of the user's password.
	PasswordHash string `json:"password_hash"`
	// Role determines which record fields the user may see detokenized.
	Role tokenizationDomain.Role `json:"role"`
}

// Principal is the authenticated identity carried through a request.
type Principal struct {
	Username string
	Role     tokenizationDomain.Role
}
