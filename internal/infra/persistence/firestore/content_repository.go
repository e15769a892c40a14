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

type contentRepository struct {
	client *firestore.Client
}

// NewContentRepository is the constructor for the Firestore-backed content store.
func NewContentRepository(client *firestore.Client) repository.ContentRepository {
	return &contentRepository{client: client}
}

func (r *contentRepository) ListServices(ctx context.Context) ([]entity.ServiceOffering, error) {
	iter := r.client.Collection(servicesCollection).
		OrderBy("displayOrder", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var services []entity.ServiceOffering
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate service documents")
		}

		var svc entity.ServiceOffering
		if err := snap.DataTo(&svc); err != nil {
			return nil, errors.Wrap(err, "failed to decode service document")
		}
		svc.ID = snap.Ref.ID
		services = append(services, svc)
	}

	return services, nil
}

func (r *contentRepository) UpsertService(ctx context.Context, svc *entity.ServiceOffering) error {
	docRef, isNew := r.docFor(servicesCollection, svc.ID)
	if isNew {
		svc.ID = docRef.ID
	}
	svc.UpdatedAt = time.Now()

	if _, err := docRef.Set(ctx, svc); err != nil {
		return errors.Wrap(err, "failed to upsert service document")
	}

	return nil
}

func (r *contentRepository) DeleteService(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, servicesCollection, id)
}

func (r *contentRepository) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	iter := r.client.Collection(testimonialsCollection).
		OrderBy("displayOrder", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var testimonials []entity.Testimonial
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate testimonial documents")
		}

		var tst entity.Testimonial
		if err := snap.DataTo(&tst); err != nil {
			return nil, errors.Wrap(err, "failed to decode testimonial document")
		}
		tst.ID = snap.Ref.ID
		testimonials = append(testimonials, tst)
	}

	return testimonials, nil
}

func (r *contentRepository) UpsertTestimonial(ctx context.Context, tst *entity.Testimonial) error {
	docRef, isNew := r.docFor(testimonialsCollection, tst.ID)
	if isNew {
		tst.ID = docRef.ID
		tst.CreatedAt = time.Now()
	}

	if _, err := docRef.Set(ctx, tst); err != nil {
		return errors.Wrap(err, "failed to upsert testimonial document")
	}

	return nil
}

func (r *contentRepository) DeleteTestimonial(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, testimonialsCollection, id)
}

func (r *contentRepository) ListCarousel(ctx context.Context) ([]entity.CarouselImage, error) {
	iter := r.client.Collection(carouselCollection).
		OrderBy("displayOrder", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var images []entity.CarouselImage
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate carousel documents")
		}

		var img entity.CarouselImage
		if err := snap.DataTo(&img); err != nil {
			return nil, errors.Wrap(err, "failed to decode carousel document")
		}
		img.ID = snap.Ref.ID
		images = append(images, img)
	}

	return images, nil
}

func (r *contentRepository) UpsertCarouselImage(ctx context.Context, img *entity.CarouselImage) error {
	docRef, isNew := r.docFor(carouselCollection, img.ID)
	if isNew {
		img.ID = docRef.ID
	}
	img.UpdatedAt = time.Now()

	if _, err := docRef.Set(ctx, img); err != nil {
		return errors.Wrap(err, "failed to upsert carousel document")
	}

	return nil
}

func (r *contentRepository) DeleteCarouselImage(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, carouselCollection, id)
}

func (r *contentRepository) docFor(collection, id string) (*firestore.DocumentRef, bool) {
	col := r.client.Collection(collection)
	if id == "" {
		return col.NewDoc(), true
	}

	return col.Doc(id), false
}

func (r *contentRepository) deleteDoc(ctx context.Context, collection, id string) error {
	docRef := r.client.Collection(collection).Doc(id)

	_, err := docRef.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return repository.ErrContentNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to get content document")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete content document")
	}

	return nil
}
