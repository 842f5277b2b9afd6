package middleware

import (
	"strings"

	"deliwer/internal/delivery/api/response"
	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	keySubject = "auth_subject"
	keyRoles   = "auth_roles"

	bearerPrefix = "Bearer "
)

// AuthMiddleware guards back-office routes with JWT access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its subject and roles.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(keySubject, claims.Subject)
		c.Set(keyRoles, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole rejects requests whose token lacks role. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(keyRoles).(entity.Roles)
			if !ok {
				return response.Forbidden(c, "Permission denied: role information missing")
			}

			if !roles.Contains(role) {
				return response.Forbidden(c, "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetSubject returns the authenticated token subject.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(keySubject).(string)

	return subject, ok && subject != ""
}
