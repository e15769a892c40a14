package handler

import (
	"io"
	"net/http"

	"draftdesk/internal/delivery/http/response"
	"draftdesk/internal/infra/broadcast"
	"draftdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PortfolioHandler holds dependencies for portfolio handlers, including the
// push endpoint that receives broadcast snapshots from other instances.
type PortfolioHandler struct {
	uc          usecase.PortfolioUsecase
	broadcaster *broadcast.Broadcaster
}

// NewPortfolioHandler is the constructor for PortfolioHandler, injected by Fx.
func NewPortfolioHandler(uc usecase.PortfolioUsecase, broadcaster *broadcast.Broadcaster) *PortfolioHandler {
	return &PortfolioHandler{uc: uc, broadcaster: broadcaster}
}

type savePortfolioItemRequest struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" validate:"required"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Active       bool     `json:"active"`
	DisplayOrder int      `json:"displayOrder"`
}

// PublicList returns the active portfolio for the marketing site.
func (h *PortfolioHandler) PublicList(c echo.Context) error {
	items, err := h.uc.PublicList(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Portfolio listed")
}

// ShareQR renders the share QR code PNG for one item.
func (h *PortfolioHandler) ShareQR(c echo.Context) error {
	png, err := h.uc.ShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AdminList returns every portfolio item for the back office.
func (h *PortfolioHandler) AdminList(c echo.Context) error {
	items, err := h.uc.AdminList(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Portfolio listed")
}

// Save upserts one portfolio item from the back office.
func (h *PortfolioHandler) Save(c echo.Context) error {
	var req savePortfolioItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid portfolio input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.Save(c.Request().Context(), usecase.SavePortfolioItemInput{
		ID:           req.ID,
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		Images:       req.Images,
		Active:       req.Active,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Portfolio item saved")
}

// Delete removes one portfolio item from the back office.
func (h *PortfolioHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Portfolio item deleted")
}

// ReceiveBroadcast accepts a Pub/Sub push delivery carrying another
// instance's portfolio snapshot. Snapshots originating from this instance
// are dropped inside the broadcaster.
func (h *PortfolioHandler) ReceiveBroadcast(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unreadable push body")
	}

	snapshot, err := broadcast.DecodePushEnvelope(body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push envelope")
	}

	h.broadcaster.HandleRemote(snapshot)

	return response.Success(c, http.StatusOK, nil, "Snapshot received")
}
