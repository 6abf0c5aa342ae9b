package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"eventmanager/internal/domain"
)

// OperatorCredentials identifies the single operator allowed to mutate data when auth is enabled.
type OperatorCredentials struct {
	Username     string
	PasswordHash string
}

type authService struct {
	operator OperatorCredentials
	hasher   domain.PasswordHasher
	issuer   domain.TokenIssuer
	tokenTTL time.Duration
}

// NewAuthService creates an AuthService that checks credentials against the configured operator.
func NewAuthService(operator OperatorCredentials, hasher domain.PasswordHasher, issuer domain.TokenIssuer, tokenTTL time.Duration) domain.AuthService {
	return &authService{
		operator: operator,
		hasher:   hasher,
		issuer:   issuer,
		tokenTTL: tokenTTL,
	}
}

func (s *authService) IssueToken(ctx context.Context, username, password string) (string, error) {
	if s.operator.Username == "" || s.operator.PasswordHash == "" {
		return "", domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.operator.Username)) != 1 {
		return "", domain.ErrUnauthorized
	}
	if err := s.hasher.Compare(s.operator.PasswordHash, password); err != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := s.issuer.Issue(username, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
