// Package service implements the tokenization gateway's collaborators: the
// static credential store, the role/field policy table, the per-role session
// manager, and the HTTP client for the remote DSM cluster.
package service

import (
	"strings"

	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// keyIDPlaceholderPrefix marks a key ID that was never configured. Fields with
// a placeholder key ID are skipped entirely: their values pass through
// untokenized instead of failing the operation.
const keyIDPlaceholderPrefix = "YOUR_"

// CredentialStore holds the per-role DSM API keys and per-field key IDs.
// Loaded once at startup and read-only thereafter.
type CredentialStore struct {
	apiKeys map[domain.Role]string
	keyIDs  map[domain.Field]string
}

// NewCredentialStore creates a credential store from static configuration.
// Empty API keys are treated as absent.
func NewCredentialStore(
	apiKeys map[domain.Role]string,
	keyIDs map[domain.Field]string,
) *CredentialStore {
	store := &CredentialStore{
		apiKeys: make(map[domain.Role]string, len(apiKeys)),
		keyIDs:  make(map[domain.Field]string, len(keyIDs)),
	}
	for role, key := range apiKeys {
		if key != "" {
			store.apiKeys[role] = key
		}
	}
	for field, keyID := range keyIDs {
		if keyID != "" {
			store.keyIDs[field] = keyID
		}
	}
	return store
}

// APIKeyFor returns the DSM API key for a role.
// Returns false when the role has no configured key.
func (s *CredentialStore) APIKeyFor(role domain.Role) (string, bool) {
	key, ok := s.apiKeys[role]
	return key, ok
}

// KeyIDFor returns the DSM key ID registered for a field.
// Returns false when the field has no key ID at all.
func (s *CredentialStore) KeyIDFor(field domain.Field) (string, bool) {
	keyID, ok := s.keyIDs[field]
	return keyID, ok
}

// IsTokenizable reports whether a field has a usable (configured,
// non-placeholder) key ID.
func (s *CredentialStore) IsTokenizable(field domain.Field) bool {
	keyID, ok := s.keyIDs[field]
	return ok && !strings.HasPrefix(keyID, keyIDPlaceholderPrefix)
}
