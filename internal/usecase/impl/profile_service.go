package impl

import (
	"context"

	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/repository"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.ProfileRepository) usecase.ProfileUsecase {
	return &profileService{profileRepo: profileRepo}
}

// Get retrieves the mirror profile for one principal UID.
func (srv *profileService) Get(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("profile " + uid)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}
