package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/prabhanjangururaj/records-vault/internal/auth/domain"
	authService "github.com/prabhanjangururaj/records-vault/internal/auth/service"
)

// authUseCase implements the AuthUseCase interface.
type authUseCase struct {
	users     *authService.UserStore
	passwords authService.PasswordService
	tokens    TokenService
	logger    *slog.Logger
}

// NewAuthUseCase creates the auth use case with injected dependencies.
func NewAuthUseCase(
	users *authService.UserStore,
	passwords authService.PasswordService,
	tokens TokenService,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login verifies a username/password pair and issues an access token. Unknown
// usernames and wrong passwords produce the same error.
func (u *authUseCase) Login(
	ctx context.Context,
	username, password string,
) (*LoginOutput, error) {
	user, ok := u.users.Get(username)
	if !ok {
		return nil, authDomain.ErrInvalidCredentials
	}

	if !u.passwords.Compare(password, user.PasswordHash) {
		u.logger.Warn("failed login attempt", slog.String("username", username))
		return nil, authDomain.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := u.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	u.logger.Info("user logged in",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)

	return &LoginOutput{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Principal: &authDomain.Principal{
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}

// Authenticate validates a bearer token and returns its principal.
func (u *authUseCase) Authenticate(
	ctx context.Context,
	tokenString string,
) (*authDomain.Principal, error) {
	return u.tokens.Validate(tokenString)
}
