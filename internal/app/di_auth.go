package app

import (
	"fmt"

	authService "github.com/prabhanjangururaj/records-vault/internal/auth/service"
	authUseCase "github.com/prabhanjangururaj/records-vault/internal/auth/usecase"
)

// authComponents groups the authentication module parts.
type authComponents struct {
	userStore       *authService.UserStore
	passwordService authService.PasswordService
	jwtService      *authService.JWTService
	useCase         authUseCase.AuthUseCase
}

// AuthUseCase returns the authentication use case instance.
// When metrics are enabled the use case is wrapped with instrumentation.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	c.authInit.Do(func() {
		if err := c.initAuth(); err != nil {
			c.initErrors["auth"] = err
		}
	})
	if storedErr, exists := c.initErrors["auth"]; exists {
		return nil, storedErr
	}
	return c.auth.useCase, nil
}

// initAuth assembles the user store, password service, token service, and
// use case from configuration.
func (c *Container) initAuth() error {
	logger := c.Logger()

	userStore, err := authService.NewUserStore(c.config.AuthUsers)
	if err != nil {
		return fmt.Errorf("failed to load auth users: %w", err)
	}
	if userStore.Len() == 0 {
		logger.Warn("no auth users configured, all logins will fail")
	}
	c.auth.userStore = userStore

	c.auth.passwordService = authService.NewPasswordService()
	c.auth.jwtService = authService.NewJWTService(c.config.JWTSecret, c.config.JWTExpiration)

	useCase := authUseCase.NewAuthUseCase(
		c.auth.userStore,
		c.auth.passwordService,
		c.auth.jwtService,
		logger,
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return err
	}
	if businessMetrics != nil {
		useCase = authUseCase.NewAuthUseCaseWithMetrics(useCase, businessMetrics)
	}

	c.auth.useCase = useCase
	return nil
}
