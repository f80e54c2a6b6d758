// Package http provides HTTP handlers for record management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/prabhanjangururaj/records-vault/internal/auth/domain"
	authHTTP "github.com/prabhanjangururaj/records-vault/internal/auth/http"
	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	"github.com/prabhanjangururaj/records-vault/internal/httputil"
	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
	"github.com/prabhanjangururaj/records-vault/internal/records/http/dto"
	recordsUseCase "github.com/prabhanjangururaj/records-vault/internal/records/usecase"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
	customValidation "github.com/prabhanjangururaj/records-vault/internal/validation"
)

// RecordHandler handles HTTP requests for record operations.
// It coordinates record management with the RecordUseCase.
type RecordHandler struct {
	recordUseCase recordsUseCase.RecordUseCase
	logger        *slog.Logger
}

// NewRecordHandler creates a new record handler with required dependencies.
func NewRecordHandler(
	recordUseCase recordsUseCase.RecordUseCase,
	logger *slog.Logger,
) *RecordHandler {
	return &RecordHandler{
		recordUseCase: recordUseCase,
		logger:        logger,
	}
}

// caller extracts the authenticated principal from the request context. The
// authentication middleware always stores one; a missing principal means the
// route was wired without it.
func (h *RecordHandler) caller(c *gin.Context) (*authDomain.Principal, bool) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return principal, true
}

// callerRole extracts the authenticated caller's role from the request context.
func (h *RecordHandler) callerRole(c *gin.Context) (tokenizationDomain.Role, bool) {
	principal, ok := h.caller(c)
	if !ok {
		return "", false
	}
	return principal.Role, true
}

// CreateHandler creates a new record.
// POST /api/records - Requires admin or editor role.
// Returns 201 Created with the stored record, sensitive fields tokenized.
func (h *RecordHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateRecordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	principal, ok := h.caller(c)
	if !ok {
		return
	}

	// The creator identity comes from the authenticated principal, never
	// from the request body.
	input := dto.ToCreateRecordInput(req)
	input.CreatedBy = principal.Username

	record, err := h.recordUseCase.Create(c.Request.Context(), input, principal.Role)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapRecordToResponse(record))
}

// GetHandler retrieves a single record with per-role detokenization.
// GET /api/records/:id - Requires authentication.
// Returns 200 OK with the record, or 404 Not Found.
func (h *RecordHandler) GetHandler(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid record id format: must be a valid UUID"),
			h.logger)
		return
	}

	role, ok := h.callerRole(c)
	if !ok {
		return
	}

	record, err := h.recordUseCase.Get(c.Request.Context(), recordID, role)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordToResponse(record))
}

// ListHandler retrieves records with per-role detokenization.
// GET /api/records - Requires authentication.
// Supports offset/limit pagination. Returns 200 OK with the record list.
func (h *RecordHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	role, ok := h.callerRole(c)
	if !ok {
		return
	}

	records, err := h.recordUseCase.List(c.Request.Context(), role, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordsToListResponse(records))
}

// SearchHandler finds records by name or account number.
// GET /api/records/search?field=name&q=Alice - Requires authentication.
// Supports offset/limit pagination. Returns 200 OK with the matching records.
func (h *RecordHandler) SearchHandler(c *gin.Context) {
	field, ok := recordsDomain.ParseSearchField(c.Query("field"))
	if !ok {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid field parameter: must be one of: name, account_number"),
			h.logger)
		return
	}

	query := c.Query("q")
	if query == "" {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("missing q parameter"),
			h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	role, ok := h.callerRole(c)
	if !ok {
		return
	}

	records, err := h.recordUseCase.Search(c.Request.Context(), field, query, role, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordsToListResponse(records))
}

// ListRawHandler retrieves records exactly as stored, tokens included.
// GET /api/records/raw/view - Requires admin role.
// Supports offset/limit pagination. Returns 200 OK with the stored records.
func (h *RecordHandler) ListRawHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	records, err := h.recordUseCase.ListRaw(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordsToListResponse(records))
}

// DeleteHandler removes a record.
// DELETE /api/records/:id - Requires admin role.
// Returns 204 No Content, or 404 Not Found.
func (h *RecordHandler) DeleteHandler(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid record id format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.recordUseCase.Delete(c.Request.Context(), recordID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
