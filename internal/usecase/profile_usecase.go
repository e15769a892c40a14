package usecase

import (
	"context"

	"draftdesk/internal/domain/entity"
)

// ProfileUsecase defines the interface for mirrored user profiles.
type ProfileUsecase interface {
	// Get retrieves the mirror profile for one principal UID.
	Get(ctx context.Context, uid string) (*entity.UserProfile, error)
}
