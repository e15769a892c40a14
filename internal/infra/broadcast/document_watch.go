package broadcast

import (
	"context"
	"log/slog"
	"time"

	"draftdesk/internal/domain/repository"
	"draftdesk/internal/domain/service"

	"github.com/pkg/errors"
)

// watchOrigin marks snapshots sourced from the document store's listener.
// It never collides with an instance origin, so HandleRemote always delivers.
const watchOrigin = "document-watch"

// RunPortfolioWatcher bridges the document store's snapshot stream into the
// broadcaster. It is the propagation path when no pubsub transport is
// configured: every collection change, whichever instance wrote it, arrives
// as the full item list and reaches local subscribers. Returns when ctx is
// cancelled or the stream ends.
func RunPortfolioWatcher(ctx context.Context, repo repository.PortfolioRepository, b *Broadcaster, logger *slog.Logger) error {
	stream, err := repo.Watch(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to open portfolio watch stream")
	}

	logger.Info("Watching portfolio collection for broadcast delivery")

	for items := range stream {
		b.HandleRemote(&service.PortfolioSnapshot{
			Origin:      watchOrigin,
			PublishedAt: time.Now(),
			Items:       items,
		})
	}

	return nil
}
