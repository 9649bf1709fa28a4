// Package service holds the ports the usecases call out through: hashing,
// tokens, code generation, QR rendering and the audit event feed.
package service

// PasswordHasher stores account passwords as salted hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Any malformed hash is a
	// mismatch.
	Check(password, hash string) bool
}
