package domain

import (
	"context"
	"time"
)

// PasswordHasher hashes and verifies operator passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated operator.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AuthService exchanges operator credentials for an access token.
type AuthService interface {
	IssueToken(ctx context.Context, username, password string) (string, error)
}
