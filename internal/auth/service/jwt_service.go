// Package service provides authentication services: HS256 JWT issuance and
// validation, Argon2id password verification, and the static user store.
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/prabhanjangururaj/records-vault/internal/auth/domain"
	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

const jwtIssuer = "records-vault"

// AccessTokenClaims represents the JWT claims for issued access tokens.
type AccessTokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and validates HS256 access tokens.
type JWTService struct {
	signingKey []byte
	tokenTTL   time.Duration
}

// NewJWTService creates a JWT service with the given signing key and token lifetime.
func NewJWTService(signingKey string, tokenTTL time.Duration) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
	}
}

// Generate issues a signed access token for the user. Returns the token and
// its expiry time.
func (s *JWTService) Generate(user *authDomain.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessTokenClaims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    jwtIssuer,
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Validate parses and verifies an access token, returning the principal it
// represents. Expired, malformed, or foreign-signed tokens all fail with
// ErrInvalidToken.
func (s *JWTService) Validate(tokenString string) (*authDomain.Principal, error) {
	if tokenString == "" {
		return nil, authDomain.ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessTokenClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Wrap(authDomain.ErrInvalidToken, "token expired")
		}
		return nil, authDomain.ErrInvalidToken
	}

	if !parsed.Valid {
		return nil, authDomain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*AccessTokenClaims)
	if !ok {
		return nil, authDomain.ErrInvalidToken
	}

	role, ok := tokenizationDomain.ParseRole(claims.Role)
	if !ok {
		return nil, apperrors.Wrap(authDomain.ErrInvalidToken, "unknown role")
	}

	return &authDomain.Principal{
		Username: claims.Username,
		Role:     role,
	}, nil
}
