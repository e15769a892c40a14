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

type portfolioRepository struct {
	client *firestore.Client
}

// NewPortfolioRepository is the constructor for the Firestore-backed portfolio store.
func NewPortfolioRepository(client *firestore.Client) repository.PortfolioRepository {
	return &portfolioRepository{client: client}
}

func (r *portfolioRepository) query() firestore.Query {
	return r.client.Collection(portfolioCollection).
		OrderBy("displayOrder", firestore.Asc)
}

// List retrieves every portfolio item, inactive ones included.
func (r *portfolioRepository) List(ctx context.Context) ([]entity.PortfolioItem, error) {
	iter := r.query().Documents(ctx)
	defer iter.Stop()

	items, err := decodeItems(iter)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Upsert creates or replaces one item. A new item gets its document ID filled in.
func (r *portfolioRepository) Upsert(ctx context.Context, item *entity.PortfolioItem) error {
	col := r.client.Collection(portfolioCollection)

	docRef := col.Doc(item.ID)
	if item.ID == "" {
		docRef = col.NewDoc()
		item.ID = docRef.ID
	}
	item.UpdatedAt = time.Now()
	if item.Images == nil {
		item.Images = []string{}
	}

	if _, err := docRef.Set(ctx, item); err != nil {
		return errors.Wrap(err, "failed to upsert portfolio document")
	}

	return nil
}

// Delete removes one item by document ID.
func (r *portfolioRepository) Delete(ctx context.Context, id string) error {
	docRef := r.client.Collection(portfolioCollection).Doc(id)

	// Firestore deletes are idempotent, so check existence first to honor
	// the not-found contract.
	_, err := docRef.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return repository.ErrPortfolioItemNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to get portfolio document")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete portfolio document")
	}

	return nil
}

// Watch streams the full item list on every collection change until ctx is
// cancelled. The channel is closed on return.
func (r *portfolioRepository) Watch(ctx context.Context) (<-chan []entity.PortfolioItem, error) {
	out := make(chan []entity.PortfolioItem)

	go func() {
		defer close(out)

		snapIter := r.query().Snapshots(ctx)
		defer snapIter.Stop()

		for {
			snap, err := snapIter.Next()
			if err != nil {
				// Cancellation or a terminal stream error ends the watch.
				return
			}

			items, err := decodeItems(snap.Documents)
			if err != nil {
				continue
			}

			select {
			case out <- items:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func decodeItems(iter *firestore.DocumentIterator) ([]entity.PortfolioItem, error) {
	var items []entity.PortfolioItem
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate portfolio documents")
		}

		var item entity.PortfolioItem
		if err := snap.DataTo(&item); err != nil {
			return nil, errors.Wrap(err, "failed to decode portfolio document")
		}
		item.ID = snap.Ref.ID
		items = append(items, item)
	}

	return items, nil
}
