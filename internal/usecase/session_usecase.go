// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"draftdesk/internal/domain/entity"
)

// --- Input DTOs ---

// SignInInput defines the data required for a password sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// ProviderSignInInput defines the data required for a social sign-in. The
// browser completes the provider popup and forwards the resulting ID token.
type ProviderSignInInput struct {
	IDToken  string
	Provider entity.ProviderType
}

// --- Output DTOs ---

// SessionOutput returns the signed-in principal with its derived roles and
// a fresh token pair.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	Principal    *entity.Principal
	Roles        entity.Roles
	IsAdmin      bool
}

// SessionUsecase defines the interface for sign-in, sign-out and session
// refresh. This is the contract the delivery layer depends on.
type SessionUsecase interface {
	// SignIn verifies an email/password credential and opens a session.
	SignIn(ctx context.Context, input SignInInput) (*SessionOutput, error)

	// SignInWithProvider verifies a social ID token and opens a session.
	SignInWithProvider(ctx context.Context, input ProviderSignInInput) (*SessionOutput, error)

	// Refresh rotates a refresh token into a fresh session.
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)

	// SignOut revokes the refresh session.
	SignOut(ctx context.Context, refreshToken string) error
}
