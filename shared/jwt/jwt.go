// Package jwt stands in for the external identity provider's verified
// session token: the core never issues or manages identity, it only
// verifies the bearer token the provider already validated and recovers
// the opaque user ID it carries. Grounded on shared/jwt/jwt.go and its
// echojwt.Config convention.
package jwt

import (
	"github.com/golang-jwt/jwt"
)

// Claims is the shape the identity provider's token carries. UserID is
// the only field the core trusts; Email is informational.
type Claims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

var secretKey []byte

// Init sets the shared secret used to verify provider-issued tokens.
func Init(secret string) {
	secretKey = []byte(secret)
}

// SecretKey returns the signing key echojwt.Config verifies tokens
// against, set once at startup by Init.
func SecretKey() []byte {
	return secretKey
}
