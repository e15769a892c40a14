package repository

import (
	"context"
	"errors"

	"draftdesk/internal/domain/entity"
)

// ErrNotificationNotFound is a domain-specific error returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the standard operations for notification persistence.
type NotificationRepository interface {
	// Create persists a new notification and fills in its document ID.
	Create(ctx context.Context, n *entity.Notification) error

	// ListByUser retrieves a user's notifications newest-first.
	ListByUser(ctx context.Context, userUID string) ([]entity.Notification, error)

	// MarkRead flags one notification as read.
	MarkRead(ctx context.Context, id string) error
}
