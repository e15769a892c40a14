package firestore

import (
	"context"
	"time"

	"draftdesk/internal/domain/entity"
	"draftdesk/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository is the constructor for the Firestore-backed profile mirror.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

// FindByUID retrieves a profile mirror by the provider UID.
func (r *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile document")
	}

	var profile entity.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}
	profile.UID = snap.Ref.ID

	return &profile, nil
}

// UpsertOnLogin creates the mirror record when absent; otherwise it
// merge-updates display name, photo and last-login without touching the
// creation timestamp.
func (r *profileRepository) UpsertOnLogin(ctx context.Context, profile *entity.UserProfile) error {
	docRef := r.client.Collection(usersCollection).Doc(profile.UID)

	_, err := docRef.Get(ctx)
	if status.Code(err) == codes.NotFound {
		// CreatedAt carries the serverTimestamp tag, so the server assigns it.
		if _, err := docRef.Set(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile document")
		}

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check profile document")
	}

	merge := map[string]any{
		"email":       profile.Email,
		"lastLoginAt": time.Now(),
	}
	if profile.DisplayName != "" {
		merge["displayName"] = profile.DisplayName
	}
	if profile.PhotoURL != "" {
		merge["photoUrl"] = profile.PhotoURL
	}
	if profile.Provider != "" {
		merge["provider"] = profile.Provider
	}

	if _, err := docRef.Set(ctx, merge, firestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to merge profile document")
	}

	return nil
}
