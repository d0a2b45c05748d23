package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims IdentityClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestEmailFromToken(t *testing.T) {
	v := NewVerifier("secret")
	token := signToken(t, "secret", IdentityClaims{
		Email: "pat@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	email, err := v.EmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", email)
}

func TestEmailFromTokenRejectsWrongSecret(t *testing.T) {
	v := NewVerifier("secret")
	token := signToken(t, "other-secret", IdentityClaims{Email: "pat@example.com"})

	_, err := v.EmailFromToken(token)
	assert.Error(t, err)
}

func TestEmailFromTokenRejectsExpired(t *testing.T) {
	v := NewVerifier("secret")
	token := signToken(t, "secret", IdentityClaims{
		Email: "pat@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := v.EmailFromToken(token)
	assert.Error(t, err)
}

func TestEmailFromTokenRequiresEmailClaim(t *testing.T) {
	v := NewVerifier("secret")
	token := signToken(t, "secret", IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := v.EmailFromToken(token)
	assert.Error(t, err)
}
