// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"draftdesk/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when a profile mirror is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the document-database mirror of identity
// provider users.
type ProfileRepository interface {
	// FindByUID retrieves a profile mirror by the provider UID.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// UpsertOnLogin creates the mirror record if absent (with a
	// server-assigned creation timestamp) or merge-updates display
	// name/photo/last-login if present.
	UpsertOnLogin(ctx context.Context, profile *entity.UserProfile) error
}
