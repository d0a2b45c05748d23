package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dermacare/booking-api/pkg/auth"
)

const ContextPatientEmail = "patient_email"

// Identity resolves the caller's email from a bearer token when one is
// present. Requests without a token pass through untouched; handlers
// that need the email decide how to fail.
func Identity(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			c.Next()
			return
		}
		email, err := verifier.EmailFromToken(token)
		if err == nil && email != "" {
			c.Set(ContextPatientEmail, email)
		}
		c.Next()
	}
}

// PatientEmail returns the email resolved by Identity, or "" when the
// request carried no usable token.
func PatientEmail(c *gin.Context) string {
	v, ok := c.Get(ContextPatientEmail)
	if !ok {
		return ""
	}
	email, _ := v.(string)
	return email
}
