package usecase

import (
	"context"
	"time"

	authDomain "github.com/prabhanjangururaj/records-vault/internal/auth/domain"
	"github.com/prabhanjangururaj/records-vault/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (a *authUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", operation, status)
	a.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(
	ctx context.Context,
	username, password string,
) (*LoginOutput, error) {
	start := time.Now()
	out, err := a.next.Login(ctx, username, password)
	a.record(ctx, "login", start, err)
	return out, err
}

// Authenticate records metrics for token authentication operations.
func (a *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	tokenString string,
) (*authDomain.Principal, error) {
	start := time.Now()
	out, err := a.next.Authenticate(ctx, tokenString)
	a.record(ctx, "authenticate", start, err)
	return out, err
}
