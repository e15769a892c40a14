package usecase

import (
	"context"

	"draftdesk/internal/domain/entity"
)

// NotificationUsecase defines the interface for portal notifications.
type NotificationUsecase interface {
	// Notify stores a notification for one user.
	Notify(ctx context.Context, userUID, title, body string) error

	// ListMine retrieves the signed-in user's notifications newest-first.
	ListMine(ctx context.Context, userUID string) ([]entity.Notification, error)

	// MarkRead flags one of the user's notifications as read.
	MarkRead(ctx context.Context, userUID, id string) error
}
