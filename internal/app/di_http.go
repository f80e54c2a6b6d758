package app

import (
	"fmt"

	authHTTP "github.com/prabhanjangururaj/records-vault/internal/auth/http"
	"github.com/prabhanjangururaj/records-vault/internal/http"
	"github.com/prabhanjangururaj/records-vault/internal/metrics"
	recordsHTTP "github.com/prabhanjangururaj/records-vault/internal/records/http"
)

// initRouterConfig builds the router configuration: handlers, the
// authentication middleware, and the optional login rate limit and metrics
// middlewares.
func (c *Container) initRouterConfig() (*http.RouterConfig, error) {
	logger := c.Logger()

	authUC, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for http server: %w", err)
	}

	recordUC, err := c.RecordUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get record use case for http server: %w", err)
	}

	routerConfig := &http.RouterConfig{
		AuthHandler:      authHTTP.NewAuthHandler(authUC, logger),
		RecordHandler:    recordsHTTP.NewRecordHandler(recordUC, logger),
		AuthMiddleware:   authHTTP.AuthenticationMiddleware(authUC, logger),
		CORSEnabled:      c.config.CORSEnabled,
		CORSAllowOrigins: c.config.CORSAllowOrigins,
	}

	if c.config.RateLimitLoginEnabled {
		routerConfig.LoginRateLimitMiddleware = authHTTP.LoginRateLimitMiddleware(
			c.config.RateLimitLoginRequestsPerSec,
			c.config.RateLimitLoginBurst,
			logger,
		)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider != nil {
		routerConfig.MetricsMiddleware = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	return routerConfig, nil
}
