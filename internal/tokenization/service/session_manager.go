package service

import (
	"context"
	"log/slog"
	"sync"

	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// Authenticator performs the remote DSM session exchange for an API key.
type Authenticator interface {
	Authenticate(ctx context.Context, apiKey string) (bearerToken string, err error)
}

// SessionManager caches one DSM bearer token per role. Sessions are created
// lazily on first use, invalidated when the DSM reports expiry, and never
// refreshed proactively. Roles are fully independent: operations for one role
// never block on or invalidate another role's session.
//
// The mutex only guards the map. The authentication exchange runs unlocked,
// so two concurrent first acquisitions for the same role may authenticate
// twice; the last write wins and both callers hold a valid token.
type SessionManager struct {
	creds  *CredentialStore
	auth   Authenticator
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[domain.Role]string
}

// NewSessionManager creates a session manager backed by the given credential
// store and authenticator.
func NewSessionManager(
	creds *CredentialStore,
	auth Authenticator,
	logger *slog.Logger,
) *SessionManager {
	return &SessionManager{
		creds:    creds,
		auth:     auth,
		logger:   logger,
		sessions: make(map[domain.Role]string),
	}
}

// Acquire returns a bearer token for the role. The cached token is returned
// without any remote call unless forceRefresh is set or no token is cached.
func (m *SessionManager) Acquire(
	ctx context.Context,
	role domain.Role,
	forceRefresh bool,
) (string, error) {
	if !forceRefresh {
		m.mu.RLock()
		token, ok := m.sessions[role]
		m.mu.RUnlock()
		if ok {
			return token, nil
		}
	}

	apiKey, ok := m.creds.APIKeyFor(role)
	if !ok {
		return "", apperrors.Wrap(domain.ErrMissingAPIKey, string(role))
	}

	m.logger.Info("authenticating with dsm",
		slog.String("role", string(role)),
		slog.Bool("force_refresh", forceRefresh),
	)

	token, err := m.auth.Authenticate(ctx, apiKey)
	if err != nil {
		return "", apperrors.Wrap(err, "acquire session for role "+string(role))
	}

	m.mu.Lock()
	m.sessions[role] = token
	m.mu.Unlock()

	return token, nil
}

// Invalidate drops the cached token for one role. Other roles' sessions are
// untouched. An acquire that raced past the invalidation may repopulate the
// cache with a token that is about to be rejected again; callers absorb that
// with one more retry cycle.
func (m *SessionManager) Invalidate(role domain.Role) {
	m.mu.Lock()
	delete(m.sessions, role)
	m.mu.Unlock()

	m.logger.Info("invalidated dsm session", slog.String("role", string(role)))
}
