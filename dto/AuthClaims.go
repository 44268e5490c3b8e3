package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims will be encoded inside the token. The user id travels in the
// standard Subject claim.
type AuthClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
