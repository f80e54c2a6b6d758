package domain

// EncryptItem is a single field scheduled for tokenization in a batch
// encrypt call.
type EncryptItem struct {
	Field     Field
	KeyID     string
	Plaintext string
}

// DecryptItem is a single field scheduled for detokenization in a batch
// decrypt call. Masked requests a partially obscured plaintext from the DSM
// (e.g., only the last four characters revealed).
type DecryptItem struct {
	Field      Field
	KeyID      string
	Ciphertext string
	Masked     bool
}

// BatchResult is the per-item outcome of a batch call, positionally aligned
// with the request items. Exactly one of Value and Err is meaningful: a nil
// Err carries the token (encrypt) or plaintext (decrypt) in Value.
type BatchResult struct {
	Value string
	Err   error
}

// OK reports whether the item was processed successfully.
func (r BatchResult) OK() bool {
	return r.Err == nil
}
