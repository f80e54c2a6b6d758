package usecase

import (
	"context"
	"time"

	"github.com/prabhanjangururaj/records-vault/internal/metrics"
	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// tokenizationUseCaseWithMetrics decorates TokenizationUseCase with metrics
// instrumentation.
type tokenizationUseCaseWithMetrics struct {
	next    TokenizationUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenizationUseCaseWithMetrics wraps a TokenizationUseCase with metrics
// recording.
func NewTokenizationUseCaseWithMetrics(
	useCase TokenizationUseCase,
	m metrics.BusinessMetrics,
) TokenizationUseCase {
	return &tokenizationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (t *tokenizationUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tokenization", operation, status)
	t.metrics.RecordDuration(ctx, "tokenization", operation, time.Since(start), status)
}

// TokenizeRecord records metrics for record tokenization operations.
func (t *tokenizationUseCaseWithMetrics) TokenizeRecord(
	ctx context.Context,
	values domain.FieldValues,
	role domain.Role,
) (domain.FieldValues, error) {
	start := time.Now()
	out, err := t.next.TokenizeRecord(ctx, values, role)
	t.record(ctx, "tokenize_record", start, err)
	return out, err
}

// DetokenizeRecord records metrics for record detokenization operations.
func (t *tokenizationUseCaseWithMetrics) DetokenizeRecord(
	ctx context.Context,
	values domain.FieldValues,
	role domain.Role,
) (domain.FieldValues, error) {
	start := time.Now()
	out, err := t.next.DetokenizeRecord(ctx, values, role)
	t.record(ctx, "detokenize_record", start, err)
	return out, err
}

// DetokenizeRecords records metrics for bulk detokenization operations.
func (t *tokenizationUseCaseWithMetrics) DetokenizeRecords(
	ctx context.Context,
	records []domain.FieldValues,
	role domain.Role,
) ([]domain.FieldValues, error) {
	start := time.Now()
	out, err := t.next.DetokenizeRecords(ctx, records, role)
	t.record(ctx, "detokenize_records", start, err)
	return out, err
}

// TokenizeField records metrics for single-field tokenization operations.
func (t *tokenizationUseCaseWithMetrics) TokenizeField(
	ctx context.Context,
	value string,
	field domain.Field,
	role domain.Role,
) (string, error) {
	start := time.Now()
	out, err := t.next.TokenizeField(ctx, value, field, role)
	t.record(ctx, "tokenize_field", start, err)
	return out, err
}

// DetokenizeField records metrics for single-field detokenization operations.
func (t *tokenizationUseCaseWithMetrics) DetokenizeField(
	ctx context.Context,
	value string,
	field domain.Field,
	role domain.Role,
) (string, error) {
	start := time.Now()
	out, err := t.next.DetokenizeField(ctx, value, field, role)
	t.record(ctx, "detokenize_field", start, err)
	return out, err
}
