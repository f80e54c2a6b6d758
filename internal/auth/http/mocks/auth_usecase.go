// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/prabhanjangururaj/records-vault/internal/auth/domain"
	authUseCase "github.com/prabhanjangururaj/records-vault/internal/auth/usecase"
)

// MockAuthUseCase is a mock implementation of the AuthUseCase interface.
type MockAuthUseCase struct {
	mock.Mock
}

// Login mocks the Login method.
func (m *MockAuthUseCase) Login(
	ctx context.Context,
	username, password string,
) (*authUseCase.LoginOutput, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authUseCase.LoginOutput), args.Error(1)
}

// Authenticate mocks the Authenticate method.
func (m *MockAuthUseCase) Authenticate(
	ctx context.Context,
	tokenString string,
) (*authDomain.Principal, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}
