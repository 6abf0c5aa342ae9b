package auth

import (
	"testing"
	"time"

	"eventmanager/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)

	token, err := issuer.Issue("admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTVerifier_Verify(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)
	verifier := NewJWTVerifier(secret)

	valid, err := issuer.Issue("admin", time.Hour)
	require.NoError(t, err)

	expiredIssuer := &jwtIssuer{secret: []byte(secret), now: func() time.Time { return time.Now().Add(-2 * time.Hour) }}
	expired, err := expiredIssuer.Issue("admin", time.Hour)
	require.NoError(t, err)

	otherKey, err := NewJWTIssuer("other-secret").Issue("admin", time.Hour)
	require.NoError(t, err)

	subject, err := verifier.Verify(valid)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)

	for name, token := range map[string]string{
		"expired":       expired,
		"wrong secret":  otherKey,
		"garbage":       "not-a-token",
		"empty subject": mustIssue(t, issuer, ""),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(token)
			require.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func mustIssue(t *testing.T, issuer domain.TokenIssuer, subject string) string {
	t.Helper()
	token, err := issuer.Issue(subject, time.Hour)
	require.NoError(t, err)
	return token
}
