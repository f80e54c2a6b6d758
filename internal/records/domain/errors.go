package domain

import (
	"github.com/prabhanjangururaj/records-vault/internal/errors"
)

// Record-specific error definitions.
var (
	// ErrRecordNotFound indicates no record exists with the requested ID.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "record not found")

	// ErrInvalidSearchField indicates the search field is not searchable.
	ErrInvalidSearchField = errors.Wrap(errors.ErrInvalidInput, "invalid search field")
)
