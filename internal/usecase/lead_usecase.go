package usecase

import (
	"context"

	"draftdesk/internal/domain/entity"
)

// SubmitLeadInput defines the public intake form payload.
type SubmitLeadInput struct {
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Message     string
	Site        *entity.SiteLocation
}

// LeadUsecase defines the interface for lead intake and pipeline management.
type LeadUsecase interface {
	// Submit accepts an intake form, runs the service-area check and stores
	// the lead. Out-of-area leads are accepted but flagged.
	Submit(ctx context.Context, input SubmitLeadInput) (*entity.Lead, error)

	// Get retrieves one lead for the back office.
	Get(ctx context.Context, id string) (*entity.Lead, error)

	// List retrieves leads newest-first, optionally filtered by status.
	List(ctx context.Context, status entity.LeadStatus) ([]entity.Lead, error)

	// UpdateStatus moves a lead through the pipeline.
	UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error
}
