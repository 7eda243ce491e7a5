// Package command contains write operations (CQRS - Commands).
package command

import "context"

// PasswordHasher hashes and verifies passwords. The domain stores the
// resulting hash as an opaque string and never interprets it.
type PasswordHasher interface {
	// Hash returns the hash of a plain-text password.
	Hash(plain string) (string, error)

	// Compare reports whether the plain-text password matches the hash.
	Compare(hash, plain string) bool
}

// TokenPair is an issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenIssuer issues authentication tokens for a user id. Token format and
// storage are infrastructure concerns; commands only carry the result.
type TokenIssuer interface {
	Issue(ctx context.Context, userID string) (*TokenPair, error)
}
