package service

import (
	"context"
	"time"

	"draftdesk/internal/domain/entity"
)

// PortfolioSnapshot is the unit of content broadcast: always the complete
// current item list, never a delta. Last writer wins; concurrent publishes
// silently overwrite each other.
type PortfolioSnapshot struct {
	// Origin identifies the publishing broadcaster instance; receivers use
	// it to drop their own remote echo.
	Origin string `json:"origin"`

	PublishedAt time.Time              `json:"published_at"`
	Items       []entity.PortfolioItem `json:"items"`
}

// ContentBroadcast propagates portfolio snapshots to every interested
// consumer: local subscribers synchronously on publish, remote ones through
// the configured transport.
type ContentBroadcast interface {
	// Publish records items as the current snapshot, invokes local
	// subscribers synchronously, then forwards to the remote transport.
	Publish(ctx context.Context, items []entity.PortfolioItem) error

	// Subscribe registers a listener and returns its unsubscribe func.
	Subscribe(fn func([]entity.PortfolioItem)) (unsubscribe func())

	// Current returns the latest snapshot seen by this instance, or nil.
	Current() []entity.PortfolioItem

	// Close releases transport resources.
	Close() error
}

// SnapshotPublisher is the remote half of the broadcast: it moves a
// snapshot to other running instances.
type SnapshotPublisher interface {
	// PublishSnapshot forwards a snapshot to the transport.
	PublishSnapshot(ctx context.Context, snapshot *PortfolioSnapshot) error

	// Close releases any resources held by the publisher.
	Close() error
}
