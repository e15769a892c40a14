// Package handler contains the HTTP handlers for the portal API.
package handler

import (
	"net/http"

	"draftdesk/internal/delivery/http/middleware"
	"draftdesk/internal/delivery/http/response"
	"draftdesk/internal/domain/access"
	"draftdesk/internal/domain/entity"
	"draftdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for auth-related handlers.
type SessionHandler struct {
	uc       usecase.SessionUsecase
	resolver *access.Resolver
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, resolver *access.Resolver) *SessionHandler {
	return &SessionHandler{uc: uc, resolver: resolver}
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type providerSignInRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type sessionResponse struct {
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
	Principal    *entity.Principal `json:"principal"`
	Roles        []string          `json:"roles"`
	IsAdmin      bool              `json:"isAdmin"`
}

func toSessionResponse(out *usecase.SessionOutput) sessionResponse {
	return sessionResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		Principal:    out.Principal,
		Roles:        out.Roles.ToStrings(),
		IsAdmin:      out.IsAdmin,
	}
}

// SignIn handles the email/password sign-in request.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(out), "Signed in")
}

// SignInWithGoogle handles a Google ID-token sign-in.
func (h *SessionHandler) SignInWithGoogle(c echo.Context) error {
	return h.providerSignIn(c, entity.ProviderTypeGoogle)
}

// SignInWithApple handles an Apple ID-token sign-in.
func (h *SessionHandler) SignInWithApple(c echo.Context) error {
	return h.providerSignIn(c, entity.ProviderTypeApple)
}

func (h *SessionHandler) providerSignIn(c echo.Context, provider entity.ProviderType) error {
	var req providerSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.SignInWithProvider(c.Request().Context(), usecase.ProviderSignInInput{
		IDToken:  req.IDToken,
		Provider: provider,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(out), "Signed in")
}

// Refresh rotates the refresh token into a fresh session.
func (h *SessionHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(out), "Session refreshed")
}

// SignOut revokes the refresh session.
func (h *SessionHandler) SignOut(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-out input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SignOut(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

type meResponse struct {
	Principal *entity.Principal `json:"principal"`
	Roles     []string          `json:"roles"`
	IsAdmin   bool              `json:"isAdmin"`
}

// Me describes the signed-in principal and the roles derived for it.
func (h *SessionHandler) Me(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	return response.Success(c, http.StatusOK, meResponse{
		Principal: principal,
		Roles:     h.resolver.RolesFor(principal).ToStrings(),
		IsAdmin:   h.resolver.IsAdmin(principal),
	}, "Session described")
}
