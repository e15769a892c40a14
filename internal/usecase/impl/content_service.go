package impl

import (
	"context"
	"log/slog"

	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/repository"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"

	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	contentRepo repository.ContentRepository
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ContentRepo repository.ContentRepository
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		contentRepo: params.ContentRepo,
		logger:      params.Logger,
	}
}

// PublicContent returns the active entries of every collection.
func (srv *contentService) PublicContent(ctx context.Context) (*usecase.SiteContent, error) {
	services, err := srv.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	testimonials, err := srv.ListTestimonials(ctx)
	if err != nil {
		return nil, err
	}
	carousel, err := srv.ListCarousel(ctx)
	if err != nil {
		return nil, err
	}

	content := &usecase.SiteContent{
		Services:     make([]entity.ServiceOffering, 0, len(services)),
		Testimonials: make([]entity.Testimonial, 0, len(testimonials)),
		Carousel:     make([]entity.CarouselImage, 0, len(carousel)),
	}
	for _, svc := range services {
		if svc.Active {
			content.Services = append(content.Services, svc)
		}
	}
	for _, tst := range testimonials {
		if tst.Active {
			content.Testimonials = append(content.Testimonials, tst)
		}
	}
	for _, img := range carousel {
		if img.Active {
			content.Carousel = append(content.Carousel, img)
		}
	}

	return content, nil
}

func (srv *contentService) ListServices(ctx context.Context) ([]entity.ServiceOffering, error) {
	services, err := srv.contentRepo.ListServices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func (srv *contentService) SaveService(ctx context.Context, svc *entity.ServiceOffering) error {
	if svc.Title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if err := srv.contentRepo.UpsertService(ctx, svc); err != nil {
		return errors.Wrap(err, "failed to save service")
	}

	return nil
}

func (srv *contentService) DeleteService(ctx context.Context, id string) error {
	return srv.mapDeleteErr(srv.contentRepo.DeleteService(ctx, id), "service", id)
}

func (srv *contentService) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	testimonials, err := srv.contentRepo.ListTestimonials(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list testimonials")
	}

	return testimonials, nil
}

func (srv *contentService) SaveTestimonial(ctx context.Context, tst *entity.Testimonial) error {
	if tst.Author == "" || tst.Quote == "" {
		return domainerrors.ErrValidationFailed.WithDetails("author and quote are required")
	}
	if tst.Rating < 1 || tst.Rating > 5 {
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}
	if err := srv.contentRepo.UpsertTestimonial(ctx, tst); err != nil {
		return errors.Wrap(err, "failed to save testimonial")
	}

	return nil
}

func (srv *contentService) DeleteTestimonial(ctx context.Context, id string) error {
	return srv.mapDeleteErr(srv.contentRepo.DeleteTestimonial(ctx, id), "testimonial", id)
}

func (srv *contentService) ListCarousel(ctx context.Context) ([]entity.CarouselImage, error) {
	carousel, err := srv.contentRepo.ListCarousel(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carousel images")
	}

	return carousel, nil
}

func (srv *contentService) SaveCarouselImage(ctx context.Context, img *entity.CarouselImage) error {
	if img.URL == "" {
		return domainerrors.ErrValidationFailed.WithDetails("image url is required")
	}
	if err := srv.contentRepo.UpsertCarouselImage(ctx, img); err != nil {
		return errors.Wrap(err, "failed to save carousel image")
	}

	return nil
}

func (srv *contentService) DeleteCarouselImage(ctx context.Context, id string) error {
	return srv.mapDeleteErr(srv.contentRepo.DeleteCarouselImage(ctx, id), "carousel image", id)
}

func (srv *contentService) mapDeleteErr(err error, kind, id string) error {
	if errors.Is(err, repository.ErrContentNotFound) {
		return domainerrors.ErrNotFound.WithDetails(kind + " " + id)
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete "+kind)
	}

	return nil
}
