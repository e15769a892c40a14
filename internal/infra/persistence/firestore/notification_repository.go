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

type notificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository is the constructor for the Firestore-backed notification store.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

// Create persists a new notification and fills in its document ID.
func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	docRef := r.client.Collection(notificationsCollection).NewDoc()
	n.ID = docRef.ID
	n.CreatedAt = time.Now()

	if _, err := docRef.Set(ctx, n); err != nil {
		return errors.Wrap(err, "failed to create notification document")
	}

	return nil
}

// ListByUser retrieves a user's notifications newest-first.
func (r *notificationRepository) ListByUser(ctx context.Context, userUID string) ([]entity.Notification, error) {
	iter := r.client.Collection(notificationsCollection).
		Where("userUid", "==", userUID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var notifications []entity.Notification
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate notification documents")
		}

		var n entity.Notification
		if err := snap.DataTo(&n); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification document")
		}
		n.ID = snap.Ref.ID
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkRead flags one notification as read.
func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection(notificationsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrNotificationNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}
