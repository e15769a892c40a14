package handler

import (
	"net/http"

	"draftdesk/internal/delivery/http/response"
	"draftdesk/internal/domain/entity"
	"draftdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for marketing content handlers.
type ContentHandler struct {
	uc usecase.ContentUsecase
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// PublicContent returns the active marketing collections in one payload.
func (h *ContentHandler) PublicContent(c echo.Context) error {
	content, err := h.uc.PublicContent(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, content, "Content listed")
}

// ListServices returns every service offering for the back office.
func (h *ContentHandler) ListServices(c echo.Context) error {
	services, err := h.uc.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "Services listed")
}

// SaveService upserts one service offering.
func (h *ContentHandler) SaveService(c echo.Context) error {
	var svc entity.ServiceOffering
	if err := c.Bind(&svc); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := h.uc.SaveService(c.Request().Context(), &svc); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "Service saved")
}

// DeleteService removes one service offering.
func (h *ContentHandler) DeleteService(c echo.Context) error {
	if err := h.uc.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service deleted")
}

// ListTestimonials returns every testimonial for the back office.
func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.uc.ListTestimonials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonials, "Testimonials listed")
}

// SaveTestimonial upserts one testimonial.
func (h *ContentHandler) SaveTestimonial(c echo.Context) error {
	var tst entity.Testimonial
	if err := c.Bind(&tst); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid testimonial input")
	}

	if err := h.uc.SaveTestimonial(c.Request().Context(), &tst); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tst, "Testimonial saved")
}

// DeleteTestimonial removes one testimonial.
func (h *ContentHandler) DeleteTestimonial(c echo.Context) error {
	if err := h.uc.DeleteTestimonial(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Testimonial deleted")
}

// ListCarousel returns every carousel image for the back office.
func (h *ContentHandler) ListCarousel(c echo.Context) error {
	images, err := h.uc.ListCarousel(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, images, "Carousel listed")
}

// SaveCarouselImage upserts one carousel image.
func (h *ContentHandler) SaveCarouselImage(c echo.Context) error {
	var img entity.CarouselImage
	if err := c.Bind(&img); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid carousel input")
	}

	if err := h.uc.SaveCarouselImage(c.Request().Context(), &img); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, img, "Carousel image saved")
}

// DeleteCarouselImage removes one carousel image.
func (h *ContentHandler) DeleteCarouselImage(c echo.Context) error {
	if err := h.uc.DeleteCarouselImage(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Carousel image deleted")
}
