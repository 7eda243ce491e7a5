// Package auth implements password hashing and token issuance. The domain
// layer treats both as opaque: it stores hashes and compares ids, nothing
// more.
package auth

import "golang.org/x/crypto/bcrypt"

// BcryptHasher implements command.PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher. A non-positive cost falls back to the
// bcrypt default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of a plain-text password.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether the plain-text password matches the hash.
func (h *BcryptHasher) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
