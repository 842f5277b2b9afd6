// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"deliwer/config"
	"deliwer/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	defaultAccessTTL = 12 * time.Hour
	tokenIssuer      = "deliwer"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Admin != nil && cfg.Admin.TokenTTL > 0 {
		ttl = cfg.Admin.TokenTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken signs an HS256 access token for subject.
func (s *jwtService) GenerateAccessToken(subject string, roles []string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := service.Claims{
		Roles: roles,
		Type:  service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign access token")
	}

	return signed, expiresAt, nil
}

// ValidateToken parses tokenString and checks signature, expiry and type.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.Type != service.TokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return claims, nil
}
