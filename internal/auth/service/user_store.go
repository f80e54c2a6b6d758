package service

import (
	"encoding/json"

	authDomain "github.com/prabhanjangururaj/records-vault/internal/auth/domain"
	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// UserStore holds the static operator-provisioned users. Loaded once from a
// JSON configuration value and read-only thereafter.
type UserStore struct {
	users map[string]*authDomain.User
}

// NewUserStore parses the users JSON (an array of user objects) into a store.
// Every user must carry a known role.
func NewUserStore(usersJSON string) (*UserStore, error) {
	var users []*authDomain.User
	if usersJSON != "" {
		if err := json.Unmarshal([]byte(usersJSON), &users); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, "unparseable users json: "+err.Error())
		}
	}

	store := &UserStore{users: make(map[string]*authDomain.User, len(users))}
	for _, user := range users {
		if user.Username == "" || user.PasswordHash == "" {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, "user missing username or password hash")
		}
		if _, ok := tokenizationDomain.ParseRole(string(user.Role)); !ok {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, "unknown role for user "+user.Username)
		}
		store.users[user.Username] = user
	}

	return store, nil
}

// Get returns the user with the given username.
func (s *UserStore) Get(username string) (*authDomain.User, bool) {
	user, ok := s.users[username]
	return user, ok
}

// Len reports how many users are provisioned.
func (s *UserStore) Len() int {
	return len(s.users)
}
