package middleware

import (
	"net/http"
	"strings"

	"draftdesk/internal/delivery/http/response"
	"draftdesk/internal/domain/access"
	"draftdesk/internal/domain/entity"
	"draftdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys for the authenticated principal.
const (
	keyPrincipal = "principal"
	keyRoles     = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and role gating.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	resolver *access.Resolver
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, resolver *access.Resolver) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, resolver: resolver}
}

// principalFromHeader validates the bearer token and rebuilds the principal.
// Returns nil when the request carries no usable access token.
func (m *AuthMiddleware) principalFromHeader(c echo.Context) *entity.Principal {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims.Type != "access" || claims.UID == "" {
		return nil
	}

	return &entity.Principal{UID: claims.UID, Email: claims.Email}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := m.principalFromHeader(c)
		if principal == nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "A valid access token is required")
		}

		c.Set(keyPrincipal, principal)
		c.Set(keyRoles, m.resolver.RolesFor(principal))

		return next(c)
	}
}

// AuthenticateOptional attaches the principal when a valid token is present
// and lets the request through either way. The guard endpoint uses it.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if principal := m.principalFromHeader(c); principal != nil {
			c.Set(keyPrincipal, principal)
			c.Set(keyRoles, m.resolver.RolesFor(principal))
		}

		return next(c)
	}
}

// RequireAdmin gates back-office routes. Admin membership is re-derived from
// the allow-list on every request, never trusted from the token. The 403
// payload mirrors the guard's wrong-role decision so the app shell can
// redirect the same way.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := CurrentPrincipal(c)
		if principal == nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "A valid access token is required")
		}

		if !m.resolver.IsAdmin(principal) {
			decision := access.Decide(access.GuardInput{
				Principal: principal,
				IsAdmin:   false,
				Path:      access.AdminPathPrefix,
			})

			return c.JSON(http.StatusForbidden, response.Response{
				Success: false,
				Code:    http.StatusForbidden,
				Message: decision.Message,
				Data:    decision,
				Error: &response.ErrorInfo{
					Code: "FORBIDDEN",
				},
			})
		}

		return next(c)
	}
}

// CurrentPrincipal returns the authenticated principal, or nil.
func CurrentPrincipal(c echo.Context) *entity.Principal {
	if principal, ok := c.Get(keyPrincipal).(*entity.Principal); ok {
		return principal
	}

	return nil
}

// CurrentRoles returns the derived roles of the authenticated principal.
func CurrentRoles(c echo.Context) entity.Roles {
	if roles, ok := c.Get(keyRoles).(entity.Roles); ok {
		return roles
	}

	return nil
}
