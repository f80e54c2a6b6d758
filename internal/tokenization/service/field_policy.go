package service

import (
	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// FieldPolicy is the immutable role/field detokenization table. Every lookup
// is total: unknown pairs are denied rather than failing.
type FieldPolicy struct {
	rules map[domain.Role]map[domain.Field]domain.MaskingMode
}

// NewDefaultFieldPolicy builds the standard policy table:
//
//   - admin sees every sensitive field in full
//   - editor sees name in full and ssn partially masked
//   - viewer sees name only
func NewDefaultFieldPolicy() *FieldPolicy {
	return &FieldPolicy{
		rules: map[domain.Role]map[domain.Field]domain.MaskingMode{
			domain.RoleAdmin: {
				domain.FieldName:     domain.MaskingNone,
				domain.FieldPhone:    domain.MaskingNone,
				domain.FieldEmail:    domain.MaskingNone,
				domain.FieldSSN:      domain.MaskingNone,
				domain.FieldPassport: domain.MaskingNone,
			},
			domain.RoleEditor: {
				domain.FieldName: domain.MaskingNone,
				domain.FieldSSN:  domain.MaskingPartial,
			},
			domain.RoleViewer: {
				domain.FieldName: domain.MaskingNone,
			},
		},
	}
}

// IsDetokenizable reports whether a role may restore a field to plaintext.
func (p *FieldPolicy) IsDetokenizable(role domain.Role, field domain.Field) bool {
	_, ok := p.rules[role][field]
	return ok
}

// AllowedFields returns the fields a role may ever see decrypted, in the
// stable sensitive-field order. Used to avoid issuing remote requests for
// fields that would be denied anyway.
func (p *FieldPolicy) AllowedFields(role domain.Role) []domain.Field {
	allowed := make([]domain.Field, 0, len(p.rules[role]))
	for _, field := range domain.SensitiveFields() {
		if _, ok := p.rules[role][field]; ok {
			allowed = append(allowed, field)
		}
	}
	return allowed
}

// MaskingFor returns the masking mode for a role/field pair.
// Denied or unknown pairs report MaskingNone.
func (p *FieldPolicy) MaskingFor(role domain.Role, field domain.Field) domain.MaskingMode {
	mode, ok := p.rules[role][field]
	if !ok {
		return domain.MaskingNone
	}
	return mode
}
