package usecase

import (
	"context"

	"draftdesk/internal/domain/entity"
)

// SavePortfolioItemInput defines the back-office upsert payload. An empty ID
// creates a new item.
type SavePortfolioItemInput struct {
	ID           string
	Title        string
	Category     string
	Description  string
	Images       []string
	Active       bool
	DisplayOrder int
}

// PortfolioUsecase defines the interface for portfolio operations.
type PortfolioUsecase interface {
	// PublicList returns active items sorted by display order, served from
	// the broadcast snapshot when one is available.
	PublicList(ctx context.Context) ([]entity.PortfolioItem, error)

	// AdminList returns every item, inactive ones included.
	AdminList(ctx context.Context) ([]entity.PortfolioItem, error)

	// Save upserts one item and broadcasts the full current list.
	Save(ctx context.Context, input SavePortfolioItemInput) (*entity.PortfolioItem, error)

	// Delete removes one item and broadcasts the full current list.
	Delete(ctx context.Context, id string) error

	// ShareQR renders the share QR PNG for one item.
	ShareQR(ctx context.Context, id string) ([]byte, error)
}
