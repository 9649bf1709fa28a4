package service

// CodeGenerator draws event code values.
type CodeGenerator interface {
	// Generate returns a zero-padded numeric code drawn uniformly at random.
	Generate() (string, error)
}
