package usecase

import (
	"context"

	"draftdesk/internal/domain/entity"
)

// CreateOrderInput defines a client's new order request.
type CreateOrderInput struct {
	ClientUID   string
	ServiceName string
	Description string
}

// UpdateOrderInput defines the back-office patch for an order.
type UpdateOrderInput struct {
	ID         string
	Status     entity.OrderStatus
	AdminNotes string
}

// OrderUsecase defines the interface for order operations.
type OrderUsecase interface {
	// Create opens a new order for the signed-in client.
	Create(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	// Get retrieves one order. A client may only read their own order.
	Get(ctx context.Context, id, requesterUID string, isAdmin bool) (*entity.Order, error)

	// ListMine retrieves the signed-in client's orders newest-first.
	ListMine(ctx context.Context, clientUID string) ([]entity.Order, error)

	// ListAll retrieves every order for the back office.
	ListAll(ctx context.Context) ([]entity.Order, error)

	// Update patches status and admin notes, notifying the order's client.
	Update(ctx context.Context, input UpdateOrderInput) (*entity.Order, error)
}
