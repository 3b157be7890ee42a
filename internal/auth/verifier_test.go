package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyReturnsEmailClaim(t *testing.T) {
	v := NewTokenVerifier("portal-secret")

	token := signToken(t, "portal-secret", jwt.MapClaims{
		"email": "boss@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	email, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "boss@example.com", email)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	v := NewTokenVerifier("portal-secret")

	wrongKey := signToken(t, "other-secret", jwt.MapClaims{"email": "boss@example.com"})
	_, err := v.Verify(wrongKey)
	assert.Error(t, err)

	expired := signToken(t, "portal-secret", jwt.MapClaims{
		"email": "boss@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	_, err = v.Verify(expired)
	assert.Error(t, err)

	noEmail := signToken(t, "portal-secret", jwt.MapClaims{"sub": "someone"})
	_, err = v.Verify(noEmail)
	assert.Error(t, err)

	_, err = v.Verify("not-a-token")
	assert.Error(t, err)
}
