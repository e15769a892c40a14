package impl

import (
	"context"
	"testing"
	"time"

	"draftdesk/internal/domain/access"
	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/service"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminEmail = "owner@draftdesk.example.com"

type sessionFixture struct {
	service  usecase.SessionUsecase
	identity *mockIdentityProvider
	tokens   *mockTokenService
	sessions *mockSessionStore
	profiles *mockProfileRepository
	watcher  *access.Watcher
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	resolver := access.NewResolver([]string{adminEmail})
	f := &sessionFixture{
		identity: &mockIdentityProvider{},
		tokens:   &mockTokenService{},
		sessions: &mockSessionStore{},
		profiles: &mockProfileRepository{},
		watcher:  access.NewWatcher(resolver),
	}
	f.service = NewSessionService(SessionServiceParams{
		Identity:    f.identity,
		Tokens:      f.tokens,
		Sessions:    f.sessions,
		ProfileRepo: f.profiles,
		Resolver:    resolver,
		Watcher:     f.watcher,
		Logger:      testLogger(),
	})

	return f
}

func TestSessionService_SignIn_Admin(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	principal := &entity.Principal{
		UID:         "uid-1",
		Email:       adminEmail,
		DisplayName: "Portal Owner",
		PhotoURL:    "https://cdn.example.com/owner.png",
		Provider:    entity.ProviderTypePassword,
	}
	f.identity.On("SignInWithPassword", ctx, adminEmail, "hunter2").Return(principal, nil)
	f.tokens.On("GenerateTokens", "uid-1", adminEmail, []string{"client", "admin"}).
		Return("access-token", "refresh-token", nil)
	f.tokens.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	f.sessions.On("Save", ctx, hashToken("refresh-token"), mock.Anything, mock.Anything).Return(nil)

	upserted := make(chan *entity.UserProfile, 1)
	f.profiles.On("UpsertOnLogin", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			upserted <- args.Get(1).(*entity.UserProfile)
		}).
		Return(nil)

	var change *access.RoleChange
	f.watcher.Subscribe(func(c access.RoleChange) { change = &c })

	out, err := f.service.SignIn(ctx, usecase.SignInInput{Email: adminEmail, Password: "hunter2"})
	require.NoError(t, err)

	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.True(t, out.IsAdmin)
	assert.Equal(t, entity.Roles{entity.RoleClient, entity.RoleAdmin}, out.Roles)

	// Sign-in already returned; the mirror upsert finishes on its own and
	// carries the principal's fields.
	select {
	case profile := <-upserted:
		assert.Equal(t, "uid-1", profile.UID)
		assert.Equal(t, adminEmail, profile.Email)
		assert.Equal(t, "Portal Owner", profile.DisplayName)
		assert.Equal(t, "https://cdn.example.com/owner.png", profile.PhotoURL)
		assert.Equal(t, string(entity.ProviderTypePassword), profile.Provider)
	case <-time.After(2 * time.Second):
		t.Fatal("profile upsert never ran")
	}

	require.NotNil(t, change)
	assert.True(t, change.IsAdmin)
}

func TestSessionService_SignIn_ProfileSyncFailureNotSurfaced(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	principal := &entity.Principal{UID: "uid-2", Email: "client@example.com"}
	f.identity.On("SignInWithPassword", ctx, "client@example.com", "pw").Return(principal, nil)
	f.tokens.On("GenerateTokens", "uid-2", "client@example.com", []string{"client"}).
		Return("a", "r", nil)
	f.tokens.On("GetRefreshTokenDuration").Return(time.Hour)
	f.sessions.On("Save", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	synced := make(chan struct{}, 1)
	f.profiles.On("UpsertOnLogin", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { synced <- struct{}{} }).
		Return(errors.New("firestore unavailable"))

	out, err := f.service.SignIn(ctx, usecase.SignInInput{Email: "client@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.False(t, out.IsAdmin)

	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		t.Fatal("profile upsert never ran")
	}
}

func TestSessionService_SignIn_InvalidCredentials(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.identity.On("SignInWithPassword", ctx, "x@example.com", "bad").
		Return(nil, domainerrors.ErrInvalidCredentials)

	_, err := f.service.SignIn(ctx, usecase.SignInInput{Email: "x@example.com", Password: "bad"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
	f.tokens.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_SignInWithProvider(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	principal := &entity.Principal{UID: "uid-3", Email: "g@example.com", Provider: entity.ProviderTypeGoogle}
	f.identity.On("VerifyIDToken", ctx, "id-token", entity.ProviderTypeGoogle).Return(principal, nil)
	f.tokens.On("GenerateTokens", "uid-3", "g@example.com", []string{"client"}).Return("a", "r", nil)
	f.tokens.On("GetRefreshTokenDuration").Return(time.Hour)
	f.sessions.On("Save", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.profiles.On("UpsertOnLogin", mock.Anything, mock.Anything).Return(nil).Maybe()

	out, err := f.service.SignInWithProvider(ctx, usecase.ProviderSignInInput{
		IDToken:  "id-token",
		Provider: entity.ProviderTypeGoogle,
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-3", out.Principal.UID)
}

func TestSessionService_SignInWithProvider_UnknownProvider(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.service.SignInWithProvider(context.Background(), usecase.ProviderSignInInput{
		IDToken:  "id-token",
		Provider: entity.ProviderType("github.com"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrProviderMismatch.ErrorCode(), appErr.ErrorCode())
}

func TestSessionService_Refresh_RotatesSession(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.tokens.On("ValidateToken", "old-refresh").
		Return(&service.Claims{UID: "uid-4", Email: "c@example.com", Type: "refresh"}, nil)
	f.sessions.On("Find", ctx, hashToken("old-refresh")).
		Return(&service.RefreshSession{UID: "uid-4", Email: "c@example.com"}, nil)
	f.sessions.On("Delete", ctx, hashToken("old-refresh")).Return(nil)
	f.tokens.On("GenerateTokens", "uid-4", "c@example.com", []string{"client"}).
		Return("new-access", "new-refresh", nil)
	f.tokens.On("GetRefreshTokenDuration").Return(time.Hour)
	f.sessions.On("Save", ctx, hashToken("new-refresh"), mock.Anything, mock.Anything).Return(nil)

	out, err := f.service.Refresh(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
	f.sessions.AssertCalled(t, "Delete", ctx, hashToken("old-refresh"))
}

func TestSessionService_Refresh_RejectsAccessToken(t *testing.T) {
	f := newSessionFixture(t)

	f.tokens.On("ValidateToken", "an-access-token").
		Return(&service.Claims{UID: "uid-5", Type: "access"}, nil)

	_, err := f.service.Refresh(context.Background(), "an-access-token")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestSessionService_Refresh_RevokedSession(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.tokens.On("ValidateToken", "revoked").
		Return(&service.Claims{UID: "uid-6", Type: "refresh"}, nil)
	f.sessions.On("Find", ctx, hashToken("revoked")).Return(nil, service.ErrSessionNotFound)

	_, err := f.service.Refresh(ctx, "revoked")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestSessionService_SignOut(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.sessions.On("Delete", ctx, hashToken("some-refresh")).Return(nil)

	require.NoError(t, f.service.SignOut(ctx, "some-refresh"))
	f.sessions.AssertExpectations(t)
}
