package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims map[string]*service.Claims
}

func (s *stubTokenService) GenerateAccessToken(string, []string) (string, time.Time, error) {
	return "", time.Time{}, errors.New("not implemented")
}

func (s *stubTokenService) ValidateToken(token string) (*service.Claims, error) {
	claims, ok := s.claims[token]
	if !ok {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func TestAuthMiddleware(t *testing.T) {
	tokens := &stubTokenService{claims: map[string]*service.Claims{
		"admin-token": {Roles: []string{"admin"}, RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"}},
		"plain-token": {Roles: []string{"viewer"}, RegisteredClaims: jwt.RegisteredClaims{Subject: "bob"}},
	}}
	m := NewAuthMiddleware(tokens)

	handler := m.Authenticate(m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		subject, ok := GetSubject(c)
		require.True(t, ok)

		return c.String(http.StatusOK, subject)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "admin token", header: "Bearer admin-token", wantStatus: http.StatusOK, wantBody: "admin"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic YWRtaW46eA==", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer forged", wantStatus: http.StatusUnauthorized},
		{name: "missing role", header: "Bearer plain-token", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/x", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			require.NoError(t, handler(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
