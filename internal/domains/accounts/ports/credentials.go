package ports

import "time"

// PasswordHasher derives and checks password digests.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// TokenIssuer signs access tokens for an account and resolves them back.
type TokenIssuer interface {
	Issue(accountID int64, ttl time.Duration) (string, time.Time, error)
	Parse(token string) (int64, error)
}
