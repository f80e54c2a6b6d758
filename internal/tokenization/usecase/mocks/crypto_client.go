package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// MockCryptoClient is a mock implementation of CryptoClient for testing.
type MockCryptoClient struct {
	mock.Mock
}

// EncryptBatch mocks the EncryptBatch method of CryptoClient.
func (m *MockCryptoClient) EncryptBatch(
	ctx context.Context,
	bearerToken string,
	items []domain.EncryptItem,
) ([]domain.BatchResult, error) {
	args := m.Called(ctx, bearerToken, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchResult), args.Error(1)
}

// DecryptBatch mocks the DecryptBatch method of CryptoClient.
func (m *MockCryptoClient) DecryptBatch(
	ctx context.Context,
	bearerToken string,
	items []domain.DecryptItem,
) ([]domain.BatchResult, error) {
	args := m.Called(ctx, bearerToken, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchResult), args.Error(1)
}
