// Package usecase implements the record service business logic: tokenization
// on the way into storage and policy-checked detokenization on the way out.
package usecase

import (
	"context"

	"github.com/google/uuid"

	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// RecordRepository defines the interface for Record persistence operations.
type RecordRepository interface {
	Create(ctx context.Context, record *recordsDomain.Record) error
	GetByID(ctx context.Context, recordID uuid.UUID) (*recordsDomain.Record, error)
	List(ctx context.Context, offset, limit int) ([]*recordsDomain.Record, error)
	Search(
		ctx context.Context,
		field recordsDomain.SearchField,
		pattern string,
		offset, limit int,
	) ([]*recordsDomain.Record, error)
	Delete(ctx context.Context, recordID uuid.UUID) error
}

// CreateRecordInput carries the plaintext values of a new record.
type CreateRecordInput struct {
	Name           string
	Phone          string
	Email          string
	SSN            string
	PassportNumber string
	AccountNumber  string
	ServiceRequest string
	CreatedBy      string
}

// RecordUseCase defines the interface for record management business logic.
// Every read operation takes the caller's role so detokenization honors the
// role's field policy.
type RecordUseCase interface {
	// Create tokenizes the sensitive fields and stores the record.
	Create(
		ctx context.Context,
		input *CreateRecordInput,
		role tokenizationDomain.Role,
	) (*recordsDomain.Record, error)

	// Get retrieves one record with the role's permitted fields detokenized.
	Get(
		ctx context.Context,
		recordID uuid.UUID,
		role tokenizationDomain.Role,
	) (*recordsDomain.Record, error)

	// List retrieves records with per-role detokenization. A record whose
	// detokenization fails is returned with its stored tokens.
	List(
		ctx context.Context,
		role tokenizationDomain.Role,
		offset, limit int,
	) ([]*recordsDomain.Record, error)

	// Search finds records by name or account number. Name lookups tokenize
	// the search key first so it matches stored tokens; when that fails the
	// raw key is used as a fallback.
	Search(
		ctx context.Context,
		field recordsDomain.SearchField,
		value string,
		role tokenizationDomain.Role,
		offset, limit int,
	) ([]*recordsDomain.Record, error)

	// ListRaw retrieves records exactly as stored, tokens included.
	ListRaw(ctx context.Context, offset, limit int) ([]*recordsDomain.Record, error)

	// Delete removes a record.
	Delete(ctx context.Context, recordID uuid.UUID) error
}
