package repository

import (
	"context"
	"errors"

	"draftdesk/internal/domain/entity"
)

// ErrContentNotFound is a domain-specific error returned when a content record is not found.
var ErrContentNotFound = errors.New("content record not found")

// ContentRepository persists the marketing content collections: service
// offerings, testimonials and carousel images.
type ContentRepository interface {
	ListServices(ctx context.Context) ([]entity.ServiceOffering, error)
	UpsertService(ctx context.Context, svc *entity.ServiceOffering) error
	DeleteService(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context) ([]entity.Testimonial, error)
	UpsertTestimonial(ctx context.Context, tst *entity.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error

	ListCarousel(ctx context.Context) ([]entity.CarouselImage, error)
	UpsertCarouselImage(ctx context.Context, img *entity.CarouselImage) error
	DeleteCarouselImage(ctx context.Context, id string) error
}
