package service

import (
	"context"

	"draftdesk/internal/domain/entity"
)

// IdentityProvider is the external authentication collaborator. It yields a
// Principal on success and a typed domain error on failure; everything else
// about the provider is opaque to this system.
type IdentityProvider interface {
	// SignInWithPassword verifies an email/password credential.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Principal, error)

	// VerifyIDToken verifies a social sign-in ID token. When want is a valid
	// provider type, a token minted by a different provider is rejected.
	VerifyIDToken(ctx context.Context, idToken string, want entity.ProviderType) (*entity.Principal, error)
}
