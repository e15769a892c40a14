package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "draftdesk/internal/delivery/context"
	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/repository"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"

	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo     repository.OrderRepository
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:     params.OrderRepo,
		notifications: params.Notifications,
		logger:        params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a new order for the signed-in client.
func (srv *orderService) Create(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	if input.ServiceName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("service name is required")
	}

	order := &entity.Order{
		ClientUID:   input.ClientUID,
		ServiceName: input.ServiceName,
		Description: input.Description,
		Status:      entity.OrderStatusPending,
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to store order")
	}

	srv.log(ctx).Info("order created",
		slog.String("order_id", order.ID),
		slog.String("client_uid", order.ClientUID),
	)

	return order, nil
}

// Get retrieves one order. A client may only read their own order.
func (srv *orderService) Get(ctx context.Context, id, requesterUID string, isAdmin bool) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("order " + id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}

	if !isAdmin && order.ClientUID != requesterUID {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListMine retrieves the signed-in client's orders newest-first.
func (srv *orderService) ListMine(ctx context.Context, clientUID string) ([]entity.Order, error) {
	orders, err := srv.orderRepo.ListByClient(ctx, clientUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list client orders")
	}

	return orders, nil
}

// ListAll retrieves every order for the back office.
func (srv *orderService) ListAll(ctx context.Context) ([]entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Update patches status and admin notes, then notifies the order's client.
// The notification is best-effort; a failure never rolls back the update.
func (srv *orderService) Update(ctx context.Context, input usecase.UpdateOrderInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(input.Status))
	}

	order, err := srv.orderRepo.FindByID(ctx, input.ID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("order " + input.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}

	statusChanged := order.Status != input.Status
	order.Status = input.Status
	order.AdminNotes = input.AdminNotes

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	if statusChanged {
		title := fmt.Sprintf("Your %s order is now %s", order.ServiceName, order.Status)
		if err := srv.notifications.Notify(ctx, order.ClientUID, title, ""); err != nil {
			srv.log(ctx).Warn("failed to notify client of order update",
				slog.String("order_id", order.ID),
				slog.Any("error", err),
			)
		}
	}

	return order, nil
}
