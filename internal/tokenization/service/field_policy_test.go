package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

func TestFieldPolicy_IsDetokenizable(t *testing.T) {
	policy := NewDefaultFieldPolicy()

	tests := []struct {
		name  string
		role  domain.Role
		field domain.Field
		want  bool
	}{
		{"admin sees name", domain.RoleAdmin, domain.FieldName, true},
		{"admin sees phone", domain.RoleAdmin, domain.FieldPhone, true},
		{"admin sees email", domain.RoleAdmin, domain.FieldEmail, true},
		{"admin sees ssn", domain.RoleAdmin, domain.FieldSSN, true},
		{"admin sees passport", domain.RoleAdmin, domain.FieldPassport, true},
		{"editor sees name", domain.RoleEditor, domain.FieldName, true},
		{"editor sees ssn", domain.RoleEditor, domain.FieldSSN, true},
		{"editor denied phone", domain.RoleEditor, domain.FieldPhone, false},
		{"editor denied email", domain.RoleEditor, domain.FieldEmail, false},
		{"editor denied passport", domain.RoleEditor, domain.FieldPassport, false},
		{"viewer sees name", domain.RoleViewer, domain.FieldName, true},
		{"viewer denied ssn", domain.RoleViewer, domain.FieldSSN, false},
		{"unknown role denied", domain.Role("auditor"), domain.FieldName, false},
		{"unknown field denied", domain.RoleAdmin, domain.Field("nickname"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsDetokenizable(tt.role, tt.field))
		})
	}
}

func TestFieldPolicy_AllowedFields(t *testing.T) {
	policy := NewDefaultFieldPolicy()

	tests := []struct {
		name string
		role domain.Role
		want []domain.Field
	}{
		{
			name: "admin gets all sensitive fields in stable order",
			role: domain.RoleAdmin,
			want: []domain.Field{
				domain.FieldName,
				domain.FieldPhone,
				domain.FieldEmail,
				domain.FieldSSN,
				domain.FieldPassport,
			},
		},
		{
			name: "editor gets name and ssn",
			role: domain.RoleEditor,
			want: []domain.Field{domain.FieldName, domain.FieldSSN},
		},
		{
			name: "viewer gets name only",
			role: domain.RoleViewer,
			want: []domain.Field{domain.FieldName},
		},
		{
			name: "unknown role gets nothing",
			role: domain.Role("auditor"),
			want: []domain.Field{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.AllowedFields(tt.role))
		})
	}
}

func TestFieldPolicy_MaskingFor(t *testing.T) {
	policy := NewDefaultFieldPolicy()

	tests := []struct {
		name  string
		role  domain.Role
		field domain.Field
		want  domain.MaskingMode
	}{
		{"editor ssn is partial", domain.RoleEditor, domain.FieldSSN, domain.MaskingPartial},
		{"editor name is unmasked", domain.RoleEditor, domain.FieldName, domain.MaskingNone},
		{"admin ssn is unmasked", domain.RoleAdmin, domain.FieldSSN, domain.MaskingNone},
		{"denied pair reports none", domain.RoleViewer, domain.FieldSSN, domain.MaskingNone},
		{"unknown role reports none", domain.Role("auditor"), domain.FieldSSN, domain.MaskingNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.MaskingFor(tt.role, tt.field))
		})
	}
}
