package repository

import (
	"context"
	"errors"

	"draftdesk/internal/domain/entity"
)

// ErrLeadNotFound is a domain-specific error returned when a lead is not found.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository defines the standard operations for lead persistence.
type LeadRepository interface {
	// Create persists a new lead and fills in its document ID.
	Create(ctx context.Context, lead *entity.Lead) error

	// FindByID retrieves a single lead by document ID.
	FindByID(ctx context.Context, id string) (*entity.Lead, error)

	// List retrieves leads newest-first, optionally filtered by status.
	List(ctx context.Context, status entity.LeadStatus) ([]entity.Lead, error)

	// UpdateStatus patches the pipeline status of a lead.
	UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error

	// ReplaceAttachments rewrites the lead's whole attachment list.
	// Last write wins at the record level; there is no conflict detection.
	ReplaceAttachments(ctx context.Context, id string, attachments []entity.Attachment) error
}
