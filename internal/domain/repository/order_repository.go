package repository

import (
	"context"
	"errors"

	"draftdesk/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order and fills in its document ID.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by document ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByClient retrieves a client's orders newest-first.
	ListByClient(ctx context.Context, clientUID string) ([]entity.Order, error)

	// List retrieves all orders newest-first for the back office.
	List(ctx context.Context) ([]entity.Order, error)

	// Update patches status and admin notes of an existing order.
	Update(ctx context.Context, order *entity.Order) error
}
