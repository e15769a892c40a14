package usecase

import (
	"context"

	"draftdesk/internal/domain/entity"
)

// SiteContent bundles the public marketing collections into one payload.
type SiteContent struct {
	Services     []entity.ServiceOffering `json:"services"`
	Testimonials []entity.Testimonial     `json:"testimonials"`
	Carousel     []entity.CarouselImage   `json:"carousel"`
}

// ContentUsecase defines the interface for marketing content operations.
// Reads are public; writes are back-office only.
type ContentUsecase interface {
	// PublicContent returns the active entries of every collection.
	PublicContent(ctx context.Context) (*SiteContent, error)

	ListServices(ctx context.Context) ([]entity.ServiceOffering, error)
	SaveService(ctx context.Context, svc *entity.ServiceOffering) error
	DeleteService(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context) ([]entity.Testimonial, error)
	SaveTestimonial(ctx context.Context, tst *entity.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error

	ListCarousel(ctx context.Context) ([]entity.CarouselImage, error)
	SaveCarouselImage(ctx context.Context, img *entity.CarouselImage) error
	DeleteCarouselImage(ctx context.Context, id string) error
}
