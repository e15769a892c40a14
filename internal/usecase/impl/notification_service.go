package impl

import (
	"context"

	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/repository"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{notificationRepo: notificationRepo}
}

// Notify stores a notification for one user.
func (srv *notificationService) Notify(ctx context.Context, userUID, title, body string) error {
	if userUID == "" || title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("user uid and title are required")
	}

	n := &entity.Notification{
		UserUID: userUID,
		Title:   title,
		Body:    body,
	}
	if err := srv.notificationRepo.Create(ctx, n); err != nil {
		return errors.Wrap(err, "failed to store notification")
	}

	return nil
}

// ListMine retrieves the signed-in user's notifications newest-first.
func (srv *notificationService) ListMine(ctx context.Context, userUID string) ([]entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListByUser(ctx, userUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flags one of the user's notifications as read. Marking another
// user's notification is forbidden.
func (srv *notificationService) MarkRead(ctx context.Context, userUID, id string) error {
	notifications, err := srv.notificationRepo.ListByUser(ctx, userUID)
	if err != nil {
		return errors.Wrap(err, "failed to list notifications")
	}

	owned := false
	for _, n := range notifications {
		if n.ID == id {
			owned = true

			break
		}
	}
	if !owned {
		return domainerrors.ErrNotFound.WithDetails("notification " + id)
	}

	err = srv.notificationRepo.MarkRead(ctx, id)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotFound.WithDetails("notification " + id)
	}
	if err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}
