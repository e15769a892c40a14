package impl

import (
	"context"
	"log/slog"

	deliverycontext "draftdesk/internal/delivery/context"
	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/repository"
	"draftdesk/internal/domain/service"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"

	"go.uber.org/fx"
)

// portfolioService implements the PortfolioUsecase interface.
type portfolioService struct {
	portfolioRepo repository.PortfolioRepository
	broadcast     service.ContentBroadcast
	qrcodes       service.QRCodeService
	logger        *slog.Logger
}

// PortfolioServiceParams holds dependencies for PortfolioService, injected by Fx.
type PortfolioServiceParams struct {
	fx.In

	PortfolioRepo repository.PortfolioRepository
	Broadcast     service.ContentBroadcast
	QRCodes       service.QRCodeService
	Logger        *slog.Logger
}

// NewPortfolioService is the constructor for portfolioService.
func NewPortfolioService(params PortfolioServiceParams) usecase.PortfolioUsecase {
	return &portfolioService{
		portfolioRepo: params.PortfolioRepo,
		broadcast:     params.Broadcast,
		qrcodes:       params.QRCodes,
		logger:        params.Logger,
	}
}

func (srv *portfolioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PublicList serves active items sorted by display order. The broadcast
// snapshot answers without a storage read when this instance has seen one.
func (srv *portfolioService) PublicList(ctx context.Context) ([]entity.PortfolioItem, error) {
	if snapshot := srv.broadcast.Current(); snapshot != nil {
		return entity.VisiblePortfolio(snapshot), nil
	}

	items, err := srv.portfolioRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list portfolio items")
	}

	return entity.VisiblePortfolio(items), nil
}

// AdminList returns every item, inactive ones included.
func (srv *portfolioService) AdminList(ctx context.Context) ([]entity.PortfolioItem, error) {
	items, err := srv.portfolioRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list portfolio items")
	}

	return items, nil
}

// Save upserts one item and broadcasts the full current list.
func (srv *portfolioService) Save(ctx context.Context, input usecase.SavePortfolioItemInput) (*entity.PortfolioItem, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	item := &entity.PortfolioItem{
		ID:           input.ID,
		Title:        input.Title,
		Category:     input.Category,
		Description:  input.Description,
		Images:       input.Images,
		Active:       input.Active,
		DisplayOrder: input.DisplayOrder,
	}
	if err := srv.portfolioRepo.Upsert(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to upsert portfolio item")
	}

	srv.publishCurrent(ctx)

	return item, nil
}

// Delete removes one item and broadcasts the full current list.
func (srv *portfolioService) Delete(ctx context.Context, id string) error {
	err := srv.portfolioRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPortfolioItemNotFound) {
		return domainerrors.ErrNotFound.WithDetails("portfolio item " + id)
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete portfolio item")
	}

	srv.publishCurrent(ctx)

	return nil
}

// publishCurrent re-reads the whole collection and broadcasts it. Broadcast
// trouble is logged; the write that triggered it already succeeded.
func (srv *portfolioService) publishCurrent(ctx context.Context) {
	items, err := srv.portfolioRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("failed to read portfolio for broadcast",
			slog.Any("error", err),
		)

		return
	}

	if err := srv.broadcast.Publish(ctx, items); err != nil {
		srv.log(ctx).Error("failed to broadcast portfolio snapshot",
			slog.Any("error", err),
		)
	}
}

// ShareQR renders the share QR PNG for one item after checking it exists.
func (srv *portfolioService) ShareQR(ctx context.Context, id string) ([]byte, error) {
	items, err := srv.portfolioRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list portfolio items")
	}

	found := false
	for _, item := range items {
		if item.ID == id {
			found = true

			break
		}
	}
	if !found {
		return nil, domainerrors.ErrNotFound.WithDetails("portfolio item " + id)
	}

	png, err := srv.qrcodes.GenerateShareQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR")
	}

	return png, nil
}
