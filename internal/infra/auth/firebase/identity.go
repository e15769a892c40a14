// Package firebase adapts the Firebase identity provider to the domain's
// IdentityProvider contract.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"draftdesk/config"
	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const signInWithPasswordURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// identityProvider verifies credentials against Firebase Authentication:
// social ID tokens through the Admin SDK, email/password through the
// Identity Toolkit REST endpoint (the Admin SDK cannot check passwords).
type identityProvider struct {
	authClient *fbauth.Client
	webAPIKey  string
	httpClient *http.Client
}

// NewIdentityProvider creates the Firebase-backed identity provider.
func NewIdentityProvider(ctx context.Context, cfg *config.Config) (service.IdentityProvider, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &identityProvider{
		authClient: authClient,
		webAPIKey:  cfg.Firebase.WebAPIKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// SignInWithPassword verifies an email/password credential through the
// Identity Toolkit REST endpoint.
func (p *identityProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Principal, error) {
	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode sign-in request")
	}

	url := signInWithPasswordURL + "?key=" + p.webAPIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sign-in request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrAuthNetwork.WrapMessage("identity toolkit request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifySignInError(resp.Body)
	}

	var signInResponse struct {
		LocalID        string `json:"localId"`
		Email          string `json:"email"`
		DisplayName    string `json:"displayName"`
		ProfilePicture string `json:"profilePicture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signInResponse); err != nil {
		return nil, errors.Wrap(err, "failed to decode sign-in response")
	}

	return &entity.Principal{
		UID:           signInResponse.LocalID,
		Email:         signInResponse.Email,
		DisplayName:   signInResponse.DisplayName,
		PhotoURL:      signInResponse.ProfilePicture,
		Provider:      entity.ProviderTypePassword,
		EmailVerified: false, // Not reported on this endpoint; refreshed on token verification.
	}, nil
}

// VerifyIDToken verifies a social sign-in ID token through the Admin SDK.
func (p *identityProvider) VerifyIDToken(ctx context.Context, idToken string, want entity.ProviderType) (*entity.Principal, error) {
	token, err := p.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrIDTokenInvalid.WrapMessage("id token verification failed")
	}

	if want.IsValid() && entity.ProviderType(token.Firebase.SignInProvider) != want {
		return nil, domainerrors.ErrProviderMismatch.WrapMessage(
			"token minted by " + token.Firebase.SignInProvider)
	}

	principal := &entity.Principal{
		UID:      token.UID,
		Provider: entity.ProviderType(token.Firebase.SignInProvider),
	}
	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		principal.EmailVerified = verified
	}
	if name, ok := token.Claims["name"].(string); ok {
		principal.DisplayName = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		principal.PhotoURL = picture
	}

	return principal, nil
}

// classifySignInError maps Identity Toolkit error bodies onto the auth
// error taxonomy.
func classifySignInError(body io.Reader) error {
	raw, _ := io.ReadAll(body)

	var errResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(raw, &errResponse)
	message := errResponse.Error.Message

	switch {
	case strings.HasPrefix(message, "TOO_MANY_ATTEMPTS"):
		return domainerrors.ErrRateLimited.WithDetails(message)
	case message == "INVALID_PASSWORD",
		message == "EMAIL_NOT_FOUND",
		message == "INVALID_LOGIN_CREDENTIALS",
		message == "USER_DISABLED":
		return domainerrors.ErrInvalidCredentials.WithDetails(message)
	case message == "":
		return domainerrors.ErrAuthNetwork.WithDetails(string(raw))
	default:
		return domainerrors.ErrInvalidCredentials.WithDetails(message)
	}
}
