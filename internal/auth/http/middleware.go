// Package http provides HTTP handlers and middleware for authentication.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/prabhanjangururaj/records-vault/internal/auth/usecase"
	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	"github.com/prabhanjangururaj/records-vault/internal/httputil"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// AuthenticationMiddleware provides authentication via Bearer token in the
// Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Validates the token using authUseCase.Authenticate()
// 3. Stores the authenticated principal in the request context
// 4. Allows downstream handlers to access the principal via GetPrincipal()
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Invalid/expired token → 401 Unauthorized (from AuthUseCase.Authenticate)
func AuthenticationMiddleware(
	authUC authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		tokenString := authHeader[len(bearerPrefix):]
		if tokenString == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		principal, err := authUC.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("username", principal.Username),
			slog.String("role", string(principal.Role)),
		)

		c.Next()
	}
}

// RequireRoleMiddleware provides role-based authorization for authenticated
// principals.
//
// This middleware MUST be used after AuthenticationMiddleware, as it requires
// an authenticated principal to be present in the request context. The request
// is allowed only when the principal's role appears in allowedRoles.
//
// Error handling:
//   - No principal in context → 401 Unauthorized (AuthenticationMiddleware not run)
//   - Role not in allowedRoles → 403 Forbidden
func RequireRoleMiddleware(
	logger *slog.Logger,
	allowedRoles ...tokenizationDomain.Role,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			logger.Debug("authorization failed: no authenticated principal in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		allowed := false
		for _, role := range allowedRoles {
			if principal.Role == role {
				allowed = true
				break
			}
		}

		if !allowed {
			logger.Debug("authorization failed: role not allowed",
				slog.String("username", principal.Username),
				slog.String("role", string(principal.Role)),
				slog.String("path", c.Request.URL.Path),
			)
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
