package usecase

import (
	"context"

	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// SessionManager provides per-role DSM bearer tokens.
type SessionManager interface {
	// Acquire returns the cached bearer token for the role, authenticating
	// remotely when no token is cached or forceRefresh is set.
	Acquire(ctx context.Context, role domain.Role, forceRefresh bool) (string, error)

	// Invalidate drops the cached token for one role only.
	Invalidate(role domain.Role)
}

// CryptoClient performs batched encrypt/decrypt calls against the DSM.
type CryptoClient interface {
	EncryptBatch(
		ctx context.Context,
		bearerToken string,
		items []domain.EncryptItem,
	) ([]domain.BatchResult, error)

	DecryptBatch(
		ctx context.Context,
		bearerToken string,
		items []domain.DecryptItem,
	) ([]domain.BatchResult, error)
}

// FieldPolicy answers which fields a role may see decrypted and how.
type FieldPolicy interface {
	IsDetokenizable(role domain.Role, field domain.Field) bool
	AllowedFields(role domain.Role) []domain.Field
	MaskingFor(role domain.Role, field domain.Field) domain.MaskingMode
}

// KeyStore resolves the DSM key ID for each sensitive field.
type KeyStore interface {
	KeyIDFor(field domain.Field) (string, bool)

	// IsTokenizable reports whether the field's key ID is configured and not
	// a placeholder. Non-tokenizable fields pass through untouched.
	IsTokenizable(field domain.Field) bool
}

// TokenizationUseCase is the gateway the record service calls. Operations
// never fail for expected degraded conditions (denied permission,
// unconfigured key, transient per-item errors); only configuration and
// transport failures return errors.
type TokenizationUseCase interface {
	// TokenizeRecord replaces the sensitive field values with tokens.
	// Fields that cannot be tokenized keep their original plaintext.
	TokenizeRecord(
		ctx context.Context,
		values domain.FieldValues,
		role domain.Role,
	) (domain.FieldValues, error)

	// DetokenizeRecord restores the policy-permitted fields to plaintext.
	// All other sensitive fields keep their stored tokens.
	DetokenizeRecord(
		ctx context.Context,
		values domain.FieldValues,
		role domain.Role,
	) (domain.FieldValues, error)

	// DetokenizeRecords applies DetokenizeRecord to each element
	// independently; output order mirrors input order and a failing record
	// degrades to its tokens instead of aborting the sequence.
	DetokenizeRecords(
		ctx context.Context,
		records []domain.FieldValues,
		role domain.Role,
	) ([]domain.FieldValues, error)

	// TokenizeField tokenizes one value the same way TokenizeRecord would,
	// so a search key matches stored data. Fields with a placeholder key ID
	// return the value unchanged.
	TokenizeField(
		ctx context.Context,
		value string,
		field domain.Field,
		role domain.Role,
	) (string, error)

	// DetokenizeField restores one value, honoring the role's policy and
	// masking mode. Denied fields return the token unchanged.
	DetokenizeField(
		ctx context.Context,
		value string,
		field domain.Field,
		role domain.Role,
	) (string, error)
}
