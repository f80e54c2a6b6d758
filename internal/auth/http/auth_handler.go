// Package http provides HTTP handlers and middleware for authentication.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabhanjangururaj/records-vault/internal/auth/http/dto"
	authUseCase "github.com/prabhanjangururaj/records-vault/internal/auth/usecase"
	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	"github.com/prabhanjangururaj/records-vault/internal/httputil"
	customValidation "github.com/prabhanjangururaj/records-vault/internal/validation"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUC authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUC,
		logger:      logger,
	}
}

// LoginHandler authenticates a username/password pair and issues an access token.
// POST /api/auth/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the token, its expiration time, and the caller identity.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.LoginResponse{
		AccessToken: output.AccessToken,
		ExpiresAt:   output.ExpiresAt,
		Username:    output.Principal.Username,
		Role:        string(output.Principal.Role),
	}

	c.JSON(http.StatusOK, response)
}

// MeHandler returns the identity of the authenticated caller.
// GET /api/auth/me - Requires authentication.
// Returns 200 OK with the caller's username and role.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPrincipalToResponse(principal))
}
