package firestore

import (
	"context"
	"time"

	"draftdesk/internal/domain/entity"
	"draftdesk/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository is the constructor for the Firestore-backed order store.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

// Create persists a new order and fills in its document ID.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	docRef := r.client.Collection(ordersCollection).NewDoc()
	order.ID = docRef.ID

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}

	if _, err := docRef.Set(ctx, order); err != nil {
		return errors.Wrap(err, "failed to create order document")
	}

	return nil
}

// FindByID retrieves a single order by document ID.
func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := r.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order document")
	}

	var order entity.Order
	if err := snap.DataTo(&order); err != nil {
		return nil, errors.Wrap(err, "failed to decode order document")
	}
	order.ID = snap.Ref.ID

	return &order, nil
}

// ListByClient retrieves a client's orders newest-first.
func (r *orderRepository) ListByClient(ctx context.Context, clientUID string) ([]entity.Order, error) {
	query := r.client.Collection(ordersCollection).
		Where("clientUid", "==", clientUID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

// List retrieves all orders newest-first for the back office.
func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	query := r.client.Collection(ordersCollection).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *orderRepository) collect(ctx context.Context, query firestore.Query) ([]entity.Order, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var orders []entity.Order
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate order documents")
		}

		var order entity.Order
		if err := snap.DataTo(&order); err != nil {
			return nil, errors.Wrap(err, "failed to decode order document")
		}
		order.ID = snap.Ref.ID
		orders = append(orders, order)
	}

	return orders, nil
}

// Update patches status and admin notes of an existing order.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	_, err := r.client.Collection(ordersCollection).Doc(order.ID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(order.Status)},
		{Path: "adminNotes", Value: order.AdminNotes},
		{Path: "updatedAt", Value: order.UpdatedAt},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrOrderNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to update order document")
	}

	return nil
}
