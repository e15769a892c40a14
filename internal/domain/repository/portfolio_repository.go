package repository

import (
	"context"
	"errors"

	"draftdesk/internal/domain/entity"
)

// ErrPortfolioItemNotFound is a domain-specific error returned when a portfolio item is not found.
var ErrPortfolioItemNotFound = errors.New("portfolio item not found")

// PortfolioRepository defines the standard operations for portfolio persistence.
type PortfolioRepository interface {
	// List retrieves every portfolio item, inactive ones included.
	List(ctx context.Context) ([]entity.PortfolioItem, error)

	// Upsert creates or replaces one item. A new item gets its document ID
	// filled in.
	Upsert(ctx context.Context, item *entity.PortfolioItem) error

	// Delete removes one item by document ID.
	Delete(ctx context.Context, id string) error

	// Watch streams the full item list on every collection change until ctx
	// is cancelled. The channel is closed on return.
	Watch(ctx context.Context) (<-chan []entity.PortfolioItem, error)
}
