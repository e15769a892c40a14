// Package broadcast propagates portfolio snapshots between running portal
// instances and to in-process subscribers.
package broadcast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"draftdesk/internal/domain/entity"
	"draftdesk/internal/domain/service"

	"github.com/google/uuid"
)

// Broadcaster implements service.ContentBroadcast. Local subscribers are
// invoked synchronously on Publish; remote instances receive the snapshot
// through the injected transport and feed it back via HandleRemote.
type Broadcaster struct {
	origin    string
	publisher service.SnapshotPublisher
	logger    *slog.Logger

	mu      sync.Mutex
	current []entity.PortfolioItem
	subs    map[int]func([]entity.PortfolioItem)
	nextID  int
	closed  bool
}

// NewBroadcaster creates a broadcaster with a fresh origin identity.
func NewBroadcaster(publisher service.SnapshotPublisher, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		origin:    uuid.NewString(),
		publisher: publisher,
		logger:    logger,
		subs:      make(map[int]func([]entity.PortfolioItem)),
	}
}

// Origin returns this instance's broadcast identity.
func (b *Broadcaster) Origin() string {
	return b.origin
}

// Publish records items as the current snapshot, invokes local subscribers
// synchronously, then forwards to the remote transport. A remote publish
// failure is logged but does not fail the call; local delivery already
// happened.
func (b *Broadcaster) Publish(ctx context.Context, items []entity.PortfolioItem) error {
	if items == nil {
		items = []entity.PortfolioItem{}
	}

	snapshot := &service.PortfolioSnapshot{
		Origin:      b.origin,
		PublishedAt: time.Now(),
		Items:       items,
	}

	b.deliver(items)

	if err := b.publisher.PublishSnapshot(ctx, snapshot); err != nil {
		b.logger.Error("failed to forward portfolio snapshot",
			slog.String("origin", b.origin),
			slog.Any("error", err),
		)
	}

	return nil
}

// HandleRemote applies a snapshot received from the transport. Snapshots
// published by this instance are dropped; local subscribers already saw them.
func (b *Broadcaster) HandleRemote(snapshot *service.PortfolioSnapshot) {
	if snapshot == nil || snapshot.Origin == b.origin {
		return
	}

	items := snapshot.Items
	if items == nil {
		items = []entity.PortfolioItem{}
	}

	b.deliver(items)
}

func (b *Broadcaster) deliver(items []entity.PortfolioItem) {
	b.mu.Lock()
	b.current = items

	fns := make([]func([]entity.PortfolioItem), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(items)
	}
}

// Subscribe registers a listener and returns its unsubscribe func.
func (b *Broadcaster) Subscribe(fn func([]entity.PortfolioItem)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Current returns the latest snapshot seen by this instance, or nil.
func (b *Broadcaster) Current() []entity.PortfolioItem {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.current
}

// Close releases transport resources. Safe to call twice.
func (b *Broadcaster) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return nil
	}
	b.closed = true
	b.mu.Unlock()

	return b.publisher.Close()
}
