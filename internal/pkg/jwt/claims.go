// internal/pkg/jwt/claims.go
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by a support-desk token.
// The registered Subject holds the account email.
type Claims struct {
	CustomerID     string `json:"customer_id"`
	Name           string `json:"name,omitempty"`
	SessionPurpose string `json:"session_purpose"` // access, ws, etc.
	jwt.RegisteredClaims
}

// Email returns the token subject, which carries the account email.
func (c *Claims) Email() string {
	return c.Subject
}

// VerifyAudience checks if the expected audience is listed in the claims.
func (c *Claims) VerifyAudience(audience string, required bool) bool {
	if len(c.Audience) == 0 {
		// If audience is required but missing
		return !required
	}

	for _, aud := range c.Audience {
		if aud == audience {
			return true
		}
	}

	return false
}
