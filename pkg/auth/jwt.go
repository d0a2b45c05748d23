package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the subset of the identity provider's token this
// service cares about: the signed-in patient's email.
type IdentityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier checks identity-provider tokens and extracts the patient email.
// Token issuance lives with the external provider; only validation and
// claim extraction happen here.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// EmailFromToken validates the token signature and returns the email claim.
func (v *Verifier) EmailFromToken(tokenString string) (string, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.Email == "" {
		return "", fmt.Errorf("token has no email claim")
	}
	return claims.Email, nil
}
