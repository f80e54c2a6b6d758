package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prabhanjangururaj/records-vault/internal/database"
	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
	tokenizationUsecase "github.com/prabhanjangururaj/records-vault/internal/tokenization/usecase"
)

// recordUseCase implements the RecordUseCase interface.
type recordUseCase struct {
	txManager    database.TxManager
	repo         RecordRepository
	tokenization tokenizationUsecase.TokenizationUseCase
	logger       *slog.Logger
}

// NewRecordUseCase creates the record use case with injected dependencies.
func NewRecordUseCase(
	txManager database.TxManager,
	repo RecordRepository,
	tokenization tokenizationUsecase.TokenizationUseCase,
	logger *slog.Logger,
) RecordUseCase {
	return &recordUseCase{
		txManager:    txManager,
		repo:         repo,
		tokenization: tokenization,
		logger:       logger,
	}
}

// Create tokenizes the sensitive fields and stores the record. Tokenization
// happens before the transaction opens: a DSM round trip must not hold a
// database transaction open.
func (u *recordUseCase) Create(
	ctx context.Context,
	input *CreateRecordInput,
	role tokenizationDomain.Role,
) (*recordsDomain.Record, error) {
	record := &recordsDomain.Record{
		ID:             uuid.Must(uuid.NewV7()),
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		SSN:            input.SSN,
		PassportNumber: input.PassportNumber,
		AccountNumber:  input.AccountNumber,
		ServiceRequest: input.ServiceRequest,
		CreatedBy:      input.CreatedBy,
		CreatedAt:      time.Now().UTC(),
	}

	tokenized, err := u.tokenization.TokenizeRecord(ctx, record.SensitiveValues(), role)
	if err != nil {
		return nil, err
	}
	record.SetSensitiveValues(tokenized)

	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return u.repo.Create(txCtx, record)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("record created",
		slog.String("record_id", record.ID.String()),
		slog.String("created_by", record.CreatedBy),
	)

	return record, nil
}

// Get retrieves one record with the role's permitted fields detokenized.
func (u *recordUseCase) Get(
	ctx context.Context,
	recordID uuid.UUID,
	role tokenizationDomain.Role,
) (*recordsDomain.Record, error) {
	record, err := u.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	restored, err := u.tokenization.DetokenizeRecord(ctx, record.SensitiveValues(), role)
	if err != nil {
		return nil, err
	}
	record.SetSensitiveValues(restored)

	return record, nil
}

// List retrieves records with per-role detokenization.
func (u *recordUseCase) List(
	ctx context.Context,
	role tokenizationDomain.Role,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	records, err := u.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return u.detokenizeAll(ctx, records, role)
}

// Search finds records by name or account number and detokenizes the results.
func (u *recordUseCase) Search(
	ctx context.Context,
	field recordsDomain.SearchField,
	value string,
	role tokenizationDomain.Role,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	var pattern string
	switch field {
	case recordsDomain.SearchFieldName:
		// The name column stores tokens, so the lookup key is tokenized first.
		// FPE is deterministic: equal plaintext yields equal tokens.
		token, err := u.tokenization.TokenizeField(
			ctx, value, tokenizationDomain.FieldName, role)
		if err != nil {
			u.logger.Warn("search key not tokenized, matching raw value",
				slog.String("error", err.Error()))
			token = value
		}
		pattern = token
	case recordsDomain.SearchFieldAccountNumber:
		pattern = "%" + value + "%"
	default:
		return nil, recordsDomain.ErrInvalidSearchField
	}

	records, err := u.repo.Search(ctx, field, pattern, offset, limit)
	if err != nil {
		return nil, err
	}

	return u.detokenizeAll(ctx, records, role)
}

// ListRaw retrieves records exactly as stored, tokens included.
func (u *recordUseCase) ListRaw(
	ctx context.Context,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	return u.repo.List(ctx, offset, limit)
}

// Delete removes a record.
func (u *recordUseCase) Delete(ctx context.Context, recordID uuid.UUID) error {
	if err := u.repo.Delete(ctx, recordID); err != nil {
		return err
	}

	u.logger.Info("record deleted", slog.String("record_id", recordID.String()))
	return nil
}

// detokenizeAll maps a record list through the batch detokenization gateway,
// preserving order.
func (u *recordUseCase) detokenizeAll(
	ctx context.Context,
	records []*recordsDomain.Record,
	role tokenizationDomain.Role,
) ([]*recordsDomain.Record, error) {
	if len(records) == 0 {
		return records, nil
	}

	values := make([]tokenizationDomain.FieldValues, len(records))
	for i, record := range records {
		values[i] = record.SensitiveValues()
	}

	restored, err := u.tokenization.DetokenizeRecords(ctx, values, role)
	if err != nil {
		return nil, err
	}

	for i, record := range records {
		record.SetSensitiveValues(restored[i])
	}
	return records, nil
}
