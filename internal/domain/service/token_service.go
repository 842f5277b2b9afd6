package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types.
const (
	TokenTypeAccess = "access"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Roles []string `json:"roles"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken signs a token for subject carrying roles.
	GenerateAccessToken(subject string, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature, expiry and type.
	ValidateToken(tokenString string) (*Claims, error)
}
