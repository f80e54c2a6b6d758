// Package mocks provides mock implementations for testing the tokenization
// orchestrator.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// MockSessionManager is a mock implementation of SessionManager for testing.
type MockSessionManager struct {
	mock.Mock
}

// Acquire mocks the Acquire method of SessionManager.
func (m *MockSessionManager) Acquire(
	ctx context.Context,
	role domain.Role,
	forceRefresh bool,
) (string, error) {
	args := m.Called(ctx, role, forceRefresh)
	return args.String(0), args.Error(1)
}

// Invalidate mocks the Invalidate method of SessionManager.
func (m *MockSessionManager) Invalidate(role domain.Role) {
	m.Called(role)
}
