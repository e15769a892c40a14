// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "draftdesk/internal/delivery/context"
	"draftdesk/internal/domain/access"
	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/repository"
	"draftdesk/internal/domain/service"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"

	"go.uber.org/fx"
)

const profileSyncTimeout = 10 * time.Second

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identity    service.IdentityProvider
	tokens      service.TokenService
	sessions    service.RefreshSessionStore
	profileRepo repository.ProfileRepository
	resolver    *access.Resolver
	watcher     *access.Watcher
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Identity    service.IdentityProvider
	Tokens      service.TokenService
	Sessions    service.RefreshSessionStore
	ProfileRepo repository.ProfileRepository
	Resolver    *access.Resolver
	Watcher     *access.Watcher
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identity:    params.Identity,
		tokens:      params.Tokens,
		sessions:    params.Sessions,
		profileRepo: params.ProfileRepo,
		resolver:    params.Resolver,
		watcher:     params.Watcher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn verifies an email/password credential and opens a session.
func (srv *sessionService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SessionOutput, error) {
	principal, err := srv.identity.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	return srv.openSession(ctx, principal)
}

// SignInWithProvider verifies a social ID token and opens a session.
func (srv *sessionService) SignInWithProvider(ctx context.Context, input usecase.ProviderSignInInput) (*usecase.SessionOutput, error) {
	if !input.Provider.IsValid() {
		return nil, domainerrors.ErrProviderMismatch.WithDetails("unknown provider " + string(input.Provider))
	}

	principal, err := srv.identity.VerifyIDToken(ctx, input.IDToken, input.Provider)
	if err != nil {
		return nil, err
	}

	return srv.openSession(ctx, principal)
}

// openSession derives roles, issues a token pair, records the refresh session
// and kicks off the profile mirror sync.
func (srv *sessionService) openSession(ctx context.Context, principal *entity.Principal) (*usecase.SessionOutput, error) {
	roles := srv.resolver.RolesFor(principal)

	accessToken, refreshToken, err := srv.tokens.GenerateTokens(principal.UID, principal.Email, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	sess := service.RefreshSession{
		UID:       principal.UID,
		Email:     principal.Email,
		CreatedAt: time.Now(),
	}
	expiresAt := time.Now().Add(srv.tokens.GetRefreshTokenDuration())
	if err := srv.sessions.Save(ctx, hashToken(refreshToken), sess, expiresAt); err != nil {
		return nil, errors.Wrap(err, "failed to save refresh session")
	}

	srv.syncProfileAsync(ctx, principal)
	srv.watcher.OnSessionChange(principal)

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Principal:    principal,
		Roles:        roles,
		IsAdmin:      srv.resolver.IsAdmin(principal),
	}, nil
}

// syncProfileAsync mirrors the principal into the users collection without
// blocking sign-in. Failures are logged, never surfaced.
func (srv *sessionService) syncProfileAsync(ctx context.Context, principal *entity.Principal) {
	logger := srv.log(ctx)
	profile := &entity.UserProfile{
		UID:         principal.UID,
		Email:       principal.Email,
		DisplayName: principal.DisplayName,
		PhotoURL:    principal.PhotoURL,
		Provider:    string(principal.Provider),
	}

	go func() {
		syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), profileSyncTimeout)
		defer cancel()

		if err := srv.profileRepo.UpsertOnLogin(syncCtx, profile); err != nil {
			logger.Error("profile mirror sync failed",
				slog.String("uid", profile.UID),
				slog.Any("error", err),
			)
		}
	}()
}

// Refresh rotates a refresh token into a fresh session.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	claims, err := srv.tokens.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	tokenHash := hashToken(refreshToken)
	sess, err := srv.sessions.Find(ctx, tokenHash)
	if errors.Is(err, service.ErrSessionNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up refresh session")
	}

	// Rotation: the presented token is single-use.
	if err := srv.sessions.Delete(ctx, tokenHash); err != nil {
		return nil, errors.Wrap(err, "failed to revoke rotated refresh session")
	}

	principal := &entity.Principal{UID: sess.UID, Email: sess.Email}
	roles := srv.resolver.RolesFor(principal)

	accessToken, newRefreshToken, err := srv.tokens.GenerateTokens(principal.UID, principal.Email, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	newSess := service.RefreshSession{
		UID:       principal.UID,
		Email:     principal.Email,
		CreatedAt: time.Now(),
	}
	expiresAt := time.Now().Add(srv.tokens.GetRefreshTokenDuration())
	if err := srv.sessions.Save(ctx, hashToken(newRefreshToken), newSess, expiresAt); err != nil {
		return nil, errors.Wrap(err, "failed to save refresh session")
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		Principal:    principal,
		Roles:        roles,
		IsAdmin:      srv.resolver.IsAdmin(principal),
	}, nil
}

// SignOut revokes the refresh session. Revoking an unknown token succeeds.
func (srv *sessionService) SignOut(ctx context.Context, refreshToken string) error {
	if err := srv.sessions.Delete(ctx, hashToken(refreshToken)); err != nil {
		return errors.Wrap(err, "failed to revoke refresh session")
	}

	srv.watcher.OnSessionChange(nil)

	return nil
}

// hashToken keys the session store so dumps never contain usable tokens.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
