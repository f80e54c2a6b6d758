// Package mocks provides mock implementations for testing record use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
)

// MockRecordRepository is a mock implementation of RecordRepository for testing.
type MockRecordRepository struct {
	mock.Mock
}

// Create mocks the Create method of RecordRepository.
func (m *MockRecordRepository) Create(ctx context.Context, record *recordsDomain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// GetByID mocks the GetByID method of RecordRepository.
func (m *MockRecordRepository) GetByID(
	ctx context.Context,
	recordID uuid.UUID,
) (*recordsDomain.Record, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.Record), args.Error(1)
}

// List mocks the List method of RecordRepository.
func (m *MockRecordRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Record), args.Error(1)
}

// Search mocks the Search method of RecordRepository.
func (m *MockRecordRepository) Search(
	ctx context.Context,
	field recordsDomain.SearchField,
	pattern string,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	args := m.Called(ctx, field, pattern, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Record), args.Error(1)
}

// Delete mocks the Delete method of RecordRepository.
func (m *MockRecordRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}
