// Package service declares the ports use cases depend on for work done outside the database:
// hashing, tokens, OAuth, push delivery, caching, QR rendering and event publishing.
package service

// PasswordHasher hashes email-login passwords. Check never returns an error; a malformed hash is a mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
