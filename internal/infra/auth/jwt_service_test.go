package auth

import (
	"testing"
	"time"

	"deliwer/config"
	"deliwer/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{Admin: &config.AdminConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, expiresAt, err := svc.GenerateAccessToken("admin", []string{entity.RoleAdmin.String()})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, []string{entity.RoleAdmin.String()}, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("first-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("second-secret"))
	require.NoError(t, err)

	token, _, err := issuer.GenerateAccessToken("admin", nil)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(testConfig("secret"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := impl.GenerateAccessToken("admin", nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
