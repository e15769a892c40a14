package broadcast

import (
	"context"
	"testing"
	"time"

	"draftdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// watchRepo serves a pre-seeded snapshot stream.
type watchRepo struct {
	stream chan []entity.PortfolioItem
}

func (r *watchRepo) List(context.Context) ([]entity.PortfolioItem, error) { return nil, nil }
func (r *watchRepo) Upsert(context.Context, *entity.PortfolioItem) error  { return nil }
func (r *watchRepo) Delete(context.Context, string) error                 { return nil }

func (r *watchRepo) Watch(ctx context.Context) (<-chan []entity.PortfolioItem, error) {
	return r.stream, nil
}

func TestRunPortfolioWatcher_DeliversCollectionChanges(t *testing.T) {
	repo := &watchRepo{stream: make(chan []entity.PortfolioItem, 2)}
	b := NewBroadcaster(&capturePublisher{}, discardLogger())

	received := make(chan []entity.PortfolioItem, 2)
	b.Subscribe(func(items []entity.PortfolioItem) { received <- items })

	done := make(chan error, 1)
	go func() { done <- RunPortfolioWatcher(context.Background(), repo, b, discardLogger()) }()

	repo.stream <- []entity.PortfolioItem{{ID: "p1", Title: "Deck permit set"}}
	repo.stream <- []entity.PortfolioItem{
		{ID: "p1", Title: "Deck permit set"},
		{ID: "p2", Title: "Garage conversion"},
	}

	first := waitForItems(t, received)
	require.Len(t, first, 1)
	assert.Equal(t, "p1", first[0].ID)

	second := waitForItems(t, received)
	require.Len(t, second, 2)
	assert.Equal(t, second, b.Current())

	close(repo.stream)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop when the stream closed")
	}
}

func waitForItems(t *testing.T, ch <-chan []entity.PortfolioItem) []entity.PortfolioItem {
	t.Helper()

	select {
	case items := <-ch:
		return items
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot delivered")
		return nil
	}
}
