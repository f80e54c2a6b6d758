// Package usecase implements the tokenization orchestrator.
//
// The orchestrator selects the fields eligible for a remote operation,
// acquires the role's DSM session, issues one batched call, and maps the
// positional results back onto the record. A session-expired rejection is
// absorbed by exactly one invalidate-and-retry cycle per operation.
package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// detokenizeConcurrency bounds how many records of a list are detokenized at
// once. Each record costs one DSM round trip in the worst case.
const detokenizeConcurrency = 4

// tokenizationUseCase implements TokenizationUseCase.
type tokenizationUseCase struct {
	sessions SessionManager
	client   CryptoClient
	policy   FieldPolicy
	keys     KeyStore
	logger   *slog.Logger
}

// NewTokenizationUseCase creates the orchestrator with injected dependencies.
func NewTokenizationUseCase(
	sessions SessionManager,
	client CryptoClient,
	policy FieldPolicy,
	keys KeyStore,
	logger *slog.Logger,
) TokenizationUseCase {
	return &tokenizationUseCase{
		sessions: sessions,
		client:   client,
		policy:   policy,
		keys:     keys,
		logger:   logger,
	}
}

// TokenizeRecord replaces sensitive field values with tokens from one batch
// encrypt call. A field whose key ID is a placeholder is skipped entirely; a
// field the DSM rejects (FPE format constraints) keeps its original
// plaintext so the record is not dropped.
func (u *tokenizationUseCase) TokenizeRecord(
	ctx context.Context,
	values domain.FieldValues,
	role domain.Role,
) (domain.FieldValues, error) {
	out := values.Clone()

	items := make([]domain.EncryptItem, 0, len(values))
	for _, field := range domain.SensitiveFields() {
		value := values[field]
		if value == "" {
			continue
		}
		keyID, ok := u.keys.KeyIDFor(field)
		if !ok || !u.keys.IsTokenizable(field) {
			u.logger.Debug("skipping field without usable key id",
				slog.String("field", string(field)))
			continue
		}
		items = append(items, domain.EncryptItem{
			Field:     field,
			KeyID:     keyID,
			Plaintext: value,
		})
	}

	if len(items) == 0 {
		return out, nil
	}

	results, err := u.encryptWithRetry(ctx, role, items)
	if err != nil {
		return nil, apperrors.Wrap(err, "tokenize record")
	}

	for i, result := range results {
		if result.OK() {
			out[items[i].Field] = result.Value
			continue
		}
		// Keep the original plaintext. Storing it beats dropping the record,
		// but callers must know tokenization is not guaranteed per field.
		u.logger.Warn("field not tokenized, storing original value",
			slog.String("field", string(items[i].Field)),
			slog.String("role", string(role)),
			slog.String("error", result.Err.Error()),
		)
	}

	return out, nil
}

// encryptWithRetry performs the batch encrypt with one session-refresh retry.
func (u *tokenizationUseCase) encryptWithRetry(
	ctx context.Context,
	role domain.Role,
	items []domain.EncryptItem,
) ([]domain.BatchResult, error) {
	for attempt := 0; ; attempt++ {
		bearerToken, err := u.sessions.Acquire(ctx, role, attempt > 0)
		if err != nil {
			return nil, err
		}

		results, err := u.client.EncryptBatch(ctx, bearerToken, items)
		if err == nil {
			// Some DSM versions report expiry per item instead of failing
			// the whole batch; the session is just as stale either way.
			if anySessionExpired(results) && attempt == 0 {
				u.logger.Info("dsm session expired, refreshing and retrying",
					slog.String("role", string(role)))
				u.sessions.Invalidate(role)
				continue
			}
			return results, nil
		}
		if apperrors.Is(err, domain.ErrSessionExpired) && attempt == 0 {
			u.logger.Info("dsm session expired, refreshing and retrying",
				slog.String("role", string(role)))
			u.sessions.Invalidate(role)
			continue
		}
		return nil, err
	}
}

// anySessionExpired reports whether any per-item failure is a session expiry.
func anySessionExpired(results []domain.BatchResult) bool {
	for _, result := range results {
		if result.Err != nil && apperrors.Is(result.Err, domain.ErrSessionExpired) {
			return true
		}
	}
	return false
}

// DetokenizeRecord restores the fields the role's policy permits, requesting
// masking per policy. Fields outside the policy, with empty values, or that
// fail per item keep their stored tokens. A second session expiry degrades
// to tokens instead of failing the read.
func (u *tokenizationUseCase) DetokenizeRecord(
	ctx context.Context,
	values domain.FieldValues,
	role domain.Role,
) (domain.FieldValues, error) {
	out := values.Clone()

	items := make([]domain.DecryptItem, 0, len(values))
	for _, field := range u.policy.AllowedFields(role) {
		value := values[field]
		if value == "" {
			continue
		}
		keyID, ok := u.keys.KeyIDFor(field)
		if !ok || !u.keys.IsTokenizable(field) {
			continue
		}
		items = append(items, domain.DecryptItem{
			Field:      field,
			KeyID:      keyID,
			Ciphertext: value,
			Masked:     u.policy.MaskingFor(role, field) == domain.MaskingPartial,
		})
	}

	if len(items) == 0 {
		return out, nil
	}

	for attempt := 0; ; attempt++ {
		bearerToken, err := u.sessions.Acquire(ctx, role, attempt > 0)
		if err != nil {
			return nil, apperrors.Wrap(err, "detokenize record")
		}

		results, err := u.client.DecryptBatch(ctx, bearerToken, items)
		if err == nil {
			if anySessionExpired(results) && attempt == 0 {
				u.logger.Info("dsm session expired, refreshing and retrying",
					slog.String("role", string(role)))
				u.sessions.Invalidate(role)
				continue
			}
			for i, result := range results {
				if result.OK() {
					out[items[i].Field] = result.Value
					continue
				}
				u.logger.Debug("field not detokenized, keeping token",
					slog.String("field", string(items[i].Field)),
					slog.String("role", string(role)),
				)
			}
			return out, nil
		}

		if apperrors.Is(err, domain.ErrSessionExpired) {
			if attempt == 0 {
				u.logger.Info("dsm session expired, refreshing and retrying",
					slog.String("role", string(role)))
				u.sessions.Invalidate(role)
				continue
			}
			// Second expiry in a row: show tokens rather than fail the read.
			u.logger.Warn("dsm session expired twice, returning tokens",
				slog.String("role", string(role)))
			return out, nil
		}

		return nil, apperrors.Wrap(err, "detokenize record")
	}
}

// DetokenizeRecords detokenizes each record independently with bounded
// concurrency. Output order mirrors input order, and a record whose
// detokenization fails comes back with its tokens instead of aborting the
// rest of the list.
func (u *tokenizationUseCase) DetokenizeRecords(
	ctx context.Context,
	records []domain.FieldValues,
	role domain.Role,
) ([]domain.FieldValues, error) {
	out := make([]domain.FieldValues, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detokenizeConcurrency)

	for i, record := range records {
		g.Go(func() error {
			detokenized, err := u.DetokenizeRecord(gctx, record, role)
			if err != nil {
				u.logger.Warn("record not detokenized, returning tokens",
					slog.String("role", string(role)),
					slog.String("error", err.Error()),
				)
				out[i] = record.Clone()
				return nil
			}
			out[i] = detokenized
			return nil
		})
	}

	// Workers always return nil; failures degrade per record.
	_ = g.Wait()

	return out, nil
}

// TokenizeField tokenizes a single value with the record path's retry
// contract. Used by search so a lookup key matches stored tokens.
func (u *tokenizationUseCase) TokenizeField(
	ctx context.Context,
	value string,
	field domain.Field,
	role domain.Role,
) (string, error) {
	if value == "" {
		return "", nil
	}

	keyID, ok := u.keys.KeyIDFor(field)
	if !ok {
		return "", apperrors.Wrap(domain.ErrMissingKeyID, string(field))
	}
	if !u.keys.IsTokenizable(field) {
		return value, nil
	}

	items := []domain.EncryptItem{{Field: field, KeyID: keyID, Plaintext: value}}
	results, err := u.encryptWithRetry(ctx, role, items)
	if err != nil {
		return "", apperrors.Wrap(err, "tokenize field "+string(field))
	}
	if !results[0].OK() {
		return "", apperrors.Wrap(results[0].Err, "tokenize field "+string(field))
	}

	return results[0].Value, nil
}

// DetokenizeField restores a single value, honoring policy and masking.
// Denied fields and per-item failures return the stored token unchanged.
func (u *tokenizationUseCase) DetokenizeField(
	ctx context.Context,
	value string,
	field domain.Field,
	role domain.Role,
) (string, error) {
	if value == "" {
		return "", nil
	}
	if !u.policy.IsDetokenizable(role, field) {
		return value, nil
	}

	single := domain.FieldValues{field: value}
	out, err := u.DetokenizeRecord(ctx, single, role)
	if err != nil {
		return "", err
	}

	return out[field], nil
}
