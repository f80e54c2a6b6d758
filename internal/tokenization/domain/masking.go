package domain

// MaskingMode states how much of a detokenized value a role may see.
type MaskingMode string

const (
	// MaskingNone returns the full plaintext.
	MaskingNone MaskingMode = "none"

	// MaskingPartial asks the DSM to return a partially obscured plaintext
	// (the DSM decides the exact shape, typically last four characters).
	MaskingPartial MaskingMode = "partial"
)
