package handler

import (
	"net/http"

	"draftdesk/internal/delivery/http/middleware"
	"draftdesk/internal/delivery/http/response"
	"draftdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for the client notification feed.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListMine returns the signed-in user's notifications.
func (h *NotificationHandler) ListMine(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)
	notifications, err := h.uc.ListMine(c.Request().Context(), principal.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications listed")
}

// MarkRead flags one of the signed-in user's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)
	if err := h.uc.MarkRead(c.Request().Context(), principal.UID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}
