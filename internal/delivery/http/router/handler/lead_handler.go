package handler

import (
	"net/http"

	"draftdesk/internal/delivery/http/response"
	"draftdesk/internal/domain/entity"
	"draftdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LeadHandler holds dependencies for lead intake and review handlers.
type LeadHandler struct {
	uc usecase.LeadUsecase
}

// NewLeadHandler is the constructor for LeadHandler, injected by Fx.
func NewLeadHandler(uc usecase.LeadUsecase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

type siteLocationRequest struct {
	Lat float64 `json:"lat" validate:"required,latitude"`
	Lng float64 `json:"lng" validate:"required,longitude"`
}

type submitLeadRequest struct {
	Name        string               `json:"name" validate:"required"`
	Email       string               `json:"email" validate:"required,email"`
	Phone       string               `json:"phone"`
	ProjectType string               `json:"projectType"`
	Message     string               `json:"message" validate:"required"`
	Site        *siteLocationRequest `json:"site"`
}

type updateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Submit accepts a contact-form lead from the public site.
func (h *LeadHandler) Submit(c echo.Context) error {
	var req submitLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := usecase.SubmitLeadInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Message:     req.Message,
	}
	if req.Site != nil {
		in.Site = &entity.SiteLocation{Lat: req.Site.Lat, Lng: req.Site.Lng}
	}

	lead, err := h.uc.Submit(c.Request().Context(), in)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, lead, "Lead submitted")
}

// List returns leads for the admin inbox, optionally filtered by status.
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.uc.List(c.Request().Context(), entity.LeadStatus(c.QueryParam("status")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, leads, "Leads listed")
}

// Get returns a single lead by ID.
func (h *LeadHandler) Get(c echo.Context) error {
	lead, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead found")
}

// UpdateStatus moves a lead through the triage pipeline.
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	var req updateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), entity.LeadStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Lead status updated")
}
