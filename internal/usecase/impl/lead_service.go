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

// leadService implements the LeadUsecase interface.
type leadService struct {
	leadRepo repository.LeadRepository
	area     service.AreaChecker
	logger   *slog.Logger
}

// LeadServiceParams holds dependencies for LeadService, injected by Fx.
type LeadServiceParams struct {
	fx.In

	LeadRepo repository.LeadRepository
	Area     service.AreaChecker
	Logger   *slog.Logger
}

// NewLeadService is the constructor for leadService.
func NewLeadService(params LeadServiceParams) usecase.LeadUsecase {
	return &leadService{
		leadRepo: params.LeadRepo,
		area:     params.Area,
		logger:   params.Logger,
	}
}

func (srv *leadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit accepts an intake form. Out-of-area sites are accepted but flagged
// for follow-up.
func (srv *leadService) Submit(ctx context.Context, input usecase.SubmitLeadInput) (*entity.Lead, error) {
	lead := &entity.Lead{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		ProjectType: input.ProjectType,
		Message:     input.Message,
		Site:        input.Site,
		Status:      entity.LeadStatusNew,
	}

	lead.InServiceArea = true
	if input.Site != nil {
		lead.InServiceArea = srv.area.Contains(input.Site.Lat, input.Site.Lng)
	}

	if err := srv.leadRepo.Create(ctx, lead); err != nil {
		return nil, errors.Wrap(err, "failed to store lead")
	}

	srv.log(ctx).Info("lead submitted",
		slog.String("lead_id", lead.ID),
		slog.Bool("in_service_area", lead.InServiceArea),
	)

	return lead, nil
}

// Get retrieves one lead for the back office.
func (srv *leadService) Get(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := srv.leadRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("lead " + id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load lead")
	}

	return lead, nil
}

// List retrieves leads newest-first, optionally filtered by status.
func (srv *leadService) List(ctx context.Context, status entity.LeadStatus) ([]entity.Lead, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown lead status " + string(status))
	}

	leads, err := srv.leadRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	return leads, nil
}

// UpdateStatus moves a lead through the pipeline.
func (srv *leadService) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown lead status " + string(status))
	}

	err := srv.leadRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return domainerrors.ErrNotFound.WithDetails("lead " + id)
	}
	if err != nil {
		return errors.Wrap(err, "failed to update lead status")
	}

	return nil
}
