// Package domain defines the entities of the tokenization gateway: the
// sensitive fields, the acting roles, the field policy table, and the batched
// request/result types exchanged with the remote DSM cluster.
package domain

// Field identifies a sensitive record field subject to tokenization.
type Field string

// Sensitive fields. Values match the column names used by record storage.
const (
	FieldName     Field = "name"
	FieldPhone    Field = "phone"
	FieldEmail    Field = "email"
	FieldSSN      Field = "ssn"
	FieldPassport Field = "passport_number"
)

// SensitiveFields returns all tokenizable fields in a stable order. The order
// is load-bearing: batch requests and their positional responses follow it.
func SensitiveFields() []Field {
	return []Field{FieldName, FieldPhone, FieldEmail, FieldSSN, FieldPassport}
}

// FieldValues maps sensitive fields to their current value, which is either a
// plaintext (before tokenization) or a token (after). Missing and empty
// entries are equivalent: both mean "nothing to process for this field".
type FieldValues map[Field]string

// Clone returns an independent copy of the field values.
func (v FieldValues) Clone() FieldValues {
	out := make(FieldValues, len(v))
	for field, value := range v {
		out[field] = value
	}
	return out
}
