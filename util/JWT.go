package util

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eibs-cms/dto"
	"eibs-cms/model"
)

// devFallbackSecret is used only outside production, and only after a loud
// warning. A production deployment with no JWT_SECRET refuses to start.
const devFallbackSecret = "dev-only-secret-change-me"

var (
	jwtSecret []byte
	tokenTTL  time.Duration
)

// InitJWT loads the signing secret and token lifetime from the environment.
// Must be called once at startup, before any token is issued or verified.
func InitJWT() error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("APP_ENV") == "production" {
			return errors.New("JWT_SECRET is not set; refusing to start in production")
		}
		log.Println("WARNING: JWT_SECRET is not set, using an insecure development fallback")
		secret = devFallbackSecret
	}
	jwtSecret = []byte(secret)

	tokenTTL = 7 * 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.New("invalid JWT_EXPIRES_IN duration: " + v)
		}
		tokenTTL = d
	}
	return nil
}

// GenerateToken issues a signed HS256 bearer token embedding the user's
// id, email and role.
func GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "eibs-cms",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies signature and expiry and returns the embedded claims.
// Any failure (bad signature, malformed token, expired) yields an error; the
// caller treats all of them the same way.
func ParseToken(tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method, expected HS256")
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}
