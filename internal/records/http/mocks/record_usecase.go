// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
	recordsUsecase "github.com/prabhanjangururaj/records-vault/internal/records/usecase"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// MockRecordUseCase is a mock implementation of RecordUseCase for testing.
type MockRecordUseCase struct {
	mock.Mock
}

// Create mocks the Create method of RecordUseCase.
func (m *MockRecordUseCase) Create(
	ctx context.Context,
	input *recordsUsecase.CreateRecordInput,
	role tokenizationDomain.Role,
) (*recordsDomain.Record, error) {
	args := m.Called(ctx, input, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.Record), args.Error(1)
}

// Get mocks the Get method of RecordUseCase.
func (m *MockRecordUseCase) Get(
	ctx context.Context,
	recordID uuid.UUID,
	role tokenizationDomain.Role,
) (*recordsDomain.Record, error) {
	args := m.Called(ctx, recordID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.Record), args.Error(1)
}

// List mocks the List method of RecordUseCase.
func (m *MockRecordUseCase) List(
	ctx context.Context,
	role tokenizationDomain.Role,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	args := m.Called(ctx, role, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Record), args.Error(1)
}

// Search mocks the Search method of RecordUseCase.
func (m *MockRecordUseCase) Search(
	ctx context.Context,
	field recordsDomain.SearchField,
	value string,
	role tokenizationDomain.Role,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	args := m.Called(ctx, field, value, role, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Record), args.Error(1)
}

// ListRaw mocks the ListRaw method of RecordUseCase.
func (m *MockRecordUseCase) ListRaw(
	ctx context.Context,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Record), args.Error(1)
}

// Delete mocks the Delete method of RecordUseCase.
func (m *MockRecordUseCase) Delete(ctx context.Context, recordID uuid.UUID) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}
