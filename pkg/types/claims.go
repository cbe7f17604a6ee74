package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the session token issued by the auth provider. The subject is
// the staff user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}
