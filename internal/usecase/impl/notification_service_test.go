package impl

import (
	"context"
	"testing"

	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_MarkRead_OwnershipEnforced(t *testing.T) {
	repo := &mockNotificationRepository{}
	service := NewNotificationService(repo)
	ctx := context.Background()

	repo.On("ListByUser", ctx, "uid-1").Return([]entity.Notification{
		{ID: "n1", UserUID: "uid-1", Title: "Order update"},
	}, nil)
	repo.On("MarkRead", ctx, "n1").Return(nil)

	require.NoError(t, service.MarkRead(ctx, "uid-1", "n1"))

	// A notification the user does not own reads as absent.
	err := service.MarkRead(ctx, "uid-1", "n2")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), appErr.ErrorCode())
	repo.AssertNotCalled(t, "MarkRead", ctx, "n2")
}

func TestNotificationService_Notify_Validation(t *testing.T) {
	repo := &mockNotificationRepository{}
	service := NewNotificationService(repo)

	err := service.Notify(context.Background(), "", "title", "")
	require.Error(t, err)
	err = service.Notify(context.Background(), "uid-1", "", "")
	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNotificationService_Notify(t *testing.T) {
	repo := &mockNotificationRepository{}
	service := NewNotificationService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserUID == "uid-1" && n.Title == "Quote ready" && !n.Read
	})).Return(nil)

	require.NoError(t, service.Notify(ctx, "uid-1", "Quote ready", "See your dashboard"))
	repo.AssertExpectations(t)
}
