// Package domain defines the core domain model for stored records. Sensitive
// identity fields are tokenized at rest: the repository only ever sees tokens,
// and plaintext exists in memory on the way in (before tokenization) and on
// the way out (after policy-checked detokenization).
package domain

import (
	"time"

	"github.com/google/uuid"

	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// Record represents one stored record. Name, Phone, Email, SSN, and
// PassportNumber hold FPE tokens at rest; AccountNumber, ServiceRequest, and
// CreatedBy are stored in plaintext.
type Record struct {
	ID             uuid.UUID
	Name           string
	Phone          string
	Email          string
	SSN            string
	PassportNumber string
	AccountNumber  string
	ServiceRequest string
	CreatedBy      string
	CreatedAt      time.Time
}

// SensitiveValues extracts the tokenizable fields as field values for the
// tokenization gateway.
func (r *Record) SensitiveValues() tokenizationDomain.FieldValues {
	return tokenizationDomain.FieldValues{
		tokenizationDomain.FieldName:     r.Name,
		tokenizationDomain.FieldPhone:    r.Phone,
		tokenizationDomain.FieldEmail:    r.Email,
		tokenizationDomain.FieldSSN:      r.SSN,
		tokenizationDomain.FieldPassport: r.PassportNumber,
	}
}

// SetSensitiveValues writes field values produced by the tokenization gateway
// back onto the record.
func (r *Record) SetSensitiveValues(values tokenizationDomain.FieldValues) {
	r.Name = values[tokenizationDomain.FieldName]
	r.Phone = values[tokenizationDomain.FieldPhone]
	r.Email = values[tokenizationDomain.FieldEmail]
	r.SSN = values[tokenizationDomain.FieldSSN]
	r.PassportNumber = values[tokenizationDomain.FieldPassport]
}

// SearchField names a column the search endpoint may filter on.
type SearchField string

// Searchable columns. Name is matched against stored tokens (the lookup key
// is tokenized first), AccountNumber is matched as a plaintext substring.
const (
	SearchFieldName          SearchField = "name"
	SearchFieldAccountNumber SearchField = "account_number"
)

// ParseSearchField validates a search field name from a request.
func ParseSearchField(s string) (SearchField, bool) {
	switch SearchField(s) {
	case SearchFieldName, SearchFieldAccountNumber:
		return SearchField(s), true
	}
	return "", false
}
