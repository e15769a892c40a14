package handler

import (
	"net/http"

	"draftdesk/internal/delivery/http/middleware"
	"draftdesk/internal/delivery/http/response"
	"draftdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for mirror profile handlers.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Me returns the signed-in user's mirror profile.
func (h *ProfileHandler) Me(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)
	profile, err := h.uc.Get(c.Request().Context(), principal.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile found")
}
