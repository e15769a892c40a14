package session

import (
	"context"
	"testing"
	"time"

	"draftdesk/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (service.RefreshSessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStoreWithClient(client), mr
}

func TestSaveAndFind(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	saved := service.RefreshSession{
		UID:       "uid-123",
		Email:     "client@example.com",
		CreatedAt: time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.Save(ctx, "hash-1", saved, time.Now().Add(time.Hour)))

	found, err := store.Find(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, saved.UID, found.UID)
	assert.Equal(t, saved.Email, found.Email)
}

func TestFindMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Find(context.Background(), "never-saved")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestFindAfterExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess := service.RefreshSession{UID: "uid-456", Email: "c@example.com"}
	require.NoError(t, store.Save(ctx, "short-lived", sess, time.Now().Add(time.Second)))

	mr.FastForward(2 * time.Second)

	_, err := store.Find(ctx, "short-lived")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestSaveExpiredRejected(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Save(context.Background(), "stale", service.RefreshSession{UID: "u"}, time.Now().Add(-time.Minute))
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := service.RefreshSession{UID: "uid-789", Email: "c@example.com"}
	require.NoError(t, store.Save(ctx, "revocable", sess, time.Now().Add(time.Hour)))

	require.NoError(t, store.Delete(ctx, "revocable"))

	_, err := store.Find(ctx, "revocable")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	// Revoking again is a no-op.
	assert.NoError(t, store.Delete(ctx, "revocable"))
}
