// Package usecase implements the authentication business logic: password
// login issuing access tokens, and bearer token authentication.
package usecase

import (
	"context"
	"time"

	authDomain "github.com/prabhanjangururaj/records-vault/internal/auth/domain"
)

// TokenService issues and validates access tokens.
type TokenService interface {
	Generate(user *authDomain.User) (accessToken string, expiresAt time.Time, err error)
	Validate(tokenString string) (*authDomain.Principal, error)
}

// LoginOutput carries the result of a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	Principal   *authDomain.Principal
}

// AuthUseCase defines the interface for authentication business logic.
type AuthUseCase interface {
	// Login verifies a username/password pair and issues an access token.
	Login(ctx context.Context, username, password string) (*LoginOutput, error)

	// Authenticate validates a bearer token and returns its principal.
	Authenticate(ctx context.Context, tokenString string) (*authDomain.Principal, error)
}
