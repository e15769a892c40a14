package handler

import (
	"net/http"

	"draftdesk/internal/delivery/http/middleware"
	"draftdesk/internal/delivery/http/response"
	"draftdesk/internal/domain/entity"
	"draftdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for client and back-office order handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type createOrderRequest struct {
	ServiceName string `json:"serviceName" validate:"required"`
	Description string `json:"description"`
}

type updateOrderRequest struct {
	Status     string `json:"status" validate:"required"`
	AdminNotes string `json:"adminNotes"`
}

// Create opens a new order for the signed-in client.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	principal := middleware.CurrentPrincipal(c)
	order, err := h.uc.Create(c.Request().Context(), usecase.CreateOrderInput{
		ClientUID:   principal.UID,
		ServiceName: req.ServiceName,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

// ListMine returns the signed-in client's orders.
func (h *OrderHandler) ListMine(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)
	orders, err := h.uc.ListMine(c.Request().Context(), principal.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders listed")
}

// GetMine returns one of the signed-in client's orders.
func (h *OrderHandler) GetMine(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)
	order, err := h.uc.Get(c.Request().Context(), c.Param("id"), principal.UID, false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order found")
}

// ListAll returns every order for the back office.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders listed")
}

// GetAny returns any order for the back office.
func (h *OrderHandler) GetAny(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)
	order, err := h.uc.Get(c.Request().Context(), c.Param("id"), principal.UID, true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order found")
}

// Update patches an order's status and notes from the back office.
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.Update(c.Request().Context(), usecase.UpdateOrderInput{
		ID:         c.Param("id"),
		Status:     entity.OrderStatus(req.Status),
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated")
}
