package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prabhanjangururaj/records-vault/internal/metrics"
	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// recordUseCaseWithMetrics decorates RecordUseCase with metrics instrumentation.
type recordUseCaseWithMetrics struct {
	next    RecordUseCase
	metrics metrics.BusinessMetrics
}

// NewRecordUseCaseWithMetrics wraps a RecordUseCase with metrics recording.
func NewRecordUseCaseWithMetrics(
	useCase RecordUseCase,
	m metrics.BusinessMetrics,
) RecordUseCase {
	return &recordUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (r *recordUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "records", operation, status)
	r.metrics.RecordDuration(ctx, "records", operation, time.Since(start), status)
}

// Create records metrics for record creation operations.
func (r *recordUseCaseWithMetrics) Create(
	ctx context.Context,
	input *CreateRecordInput,
	role tokenizationDomain.Role,
) (*recordsDomain.Record, error) {
	start := time.Now()
	out, err := r.next.Create(ctx, input, role)
	r.record(ctx, "record_create", start, err)
	return out, err
}

// Get records metrics for single record retrieval operations.
func (r *recordUseCaseWithMetrics) Get(
	ctx context.Context,
	recordID uuid.UUID,
	role tokenizationDomain.Role,
) (*recordsDomain.Record, error) {
	start := time.Now()
	out, err := r.next.Get(ctx, recordID, role)
	r.record(ctx, "record_get", start, err)
	return out, err
}

// List records metrics for record listing operations.
func (r *recordUseCaseWithMetrics) List(
	ctx context.Context,
	role tokenizationDomain.Role,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	start := time.Now()
	out, err := r.next.List(ctx, role, offset, limit)
	r.record(ctx, "record_list", start, err)
	return out, err
}

// Search records metrics for record search operations.
func (r *recordUseCaseWithMetrics) Search(
	ctx context.Context,
	field recordsDomain.SearchField,
	value string,
	role tokenizationDomain.Role,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	start := time.Now()
	out, err := r.next.Search(ctx, field, value, role, offset, limit)
	r.record(ctx, "record_search", start, err)
	return out, err
}

// ListRaw records metrics for raw listing operations.
func (r *recordUseCaseWithMetrics) ListRaw(
	ctx context.Context,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	start := time.Now()
	out, err := r.next.ListRaw(ctx, offset, limit)
	r.record(ctx, "record_list_raw", start, err)
	return out, err
}

// Delete records metrics for record deletion operations.
func (r *recordUseCaseWithMetrics) Delete(ctx context.Context, recordID uuid.UUID) error {
	start := time.Now()
	err := r.next.Delete(ctx, recordID)
	r.record(ctx, "record_delete", start, err)
	return err
}
