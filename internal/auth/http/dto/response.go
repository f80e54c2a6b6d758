// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	authDomain "github.com/prabhanjangururaj/records-vault/internal/auth/domain"
)

// LoginResponse contains the result of a successful login.
// SECURITY: The token grants access until it expires and must be stored securely.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
}

// PrincipalResponse represents the authenticated caller in API responses.
type PrincipalResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MapPrincipalToResponse converts a domain principal to an API response.
func MapPrincipalToResponse(principal *authDomain.Principal) PrincipalResponse {
	return PrincipalResponse{
		Username: principal.Username,
		Role:     string(principal.Role),
	}
}
