package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// MockTokenizationUseCase is a mock implementation of TokenizationUseCase for
// testing.
type MockTokenizationUseCase struct {
	mock.Mock
}

// TokenizeRecord mocks the TokenizeRecord method of TokenizationUseCase.
func (m *MockTokenizationUseCase) TokenizeRecord(
	ctx context.Context,
	values domain.FieldValues,
	role domain.Role,
) (domain.FieldValues, error) {
	args := m.Called(ctx, values, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.FieldValues), args.Error(1)
}

// DetokenizeRecord mocks the DetokenizeRecord method of TokenizationUseCase.
func (m *MockTokenizationUseCase) DetokenizeRecord(
	ctx context.Context,
	values domain.FieldValues,
	role domain.Role,
) (domain.FieldValues, error) {
	args := m.Called(ctx, values, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.FieldValues), args.Error(1)
}

// DetokenizeRecords mocks the DetokenizeRecords method of TokenizationUseCase.
func (m *MockTokenizationUseCase) DetokenizeRecords(
	ctx context.Context,
	records []domain.FieldValues,
	role domain.Role,
) ([]domain.FieldValues, error) {
	args := m.Called(ctx, records, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FieldValues), args.Error(1)
}

// TokenizeField mocks the TokenizeField method of TokenizationUseCase.
func (m *MockTokenizationUseCase) TokenizeField(
	ctx context.Context,
	value string,
	field domain.Field,
	role domain.Role,
) (string, error) {
	args := m.Called(ctx, value, field, role)
	return args.String(0), args.Error(1)
}

// DetokenizeField mocks the DetokenizeField method of TokenizationUseCase.
func (m *MockTokenizationUseCase) DetokenizeField(
	ctx context.Context,
	value string,
	field domain.Field,
	role domain.Role,
) (string, error) {
	args := m.Called(ctx, value, field, role)
	return args.String(0), args.Error(1)
}
