package handler

import (
	"net/http"

	"draftdesk/internal/delivery/http/middleware"
	"draftdesk/internal/delivery/http/response"
	"draftdesk/internal/domain/access"

	"github.com/labstack/echo/v4"
)

// GuardHandler answers route-guard decisions for the app shell.
type GuardHandler struct {
	resolver *access.Resolver
}

// NewGuardHandler is the constructor for GuardHandler, injected by Fx.
func NewGuardHandler(resolver *access.Resolver) *GuardHandler {
	return &GuardHandler{resolver: resolver}
}

// Decide evaluates the guard table for the requested path. The caller may be
// anonymous, so this route uses optional authentication.
func (h *GuardHandler) Decide(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		path = "/"
	}

	principal := middleware.CurrentPrincipal(c)
	isAdmin := h.resolver.IsAdmin(principal)

	decision := access.Decide(access.GuardInput{
		Loading:   false,
		Principal: principal,
		IsAdmin:   isAdmin,
		Path:      path,
	})

	return response.Success(c, http.StatusOK, decision, "Guard evaluated")
}
