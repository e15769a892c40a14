package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"draftdesk/internal/domain/access"
	"draftdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardContext(t *testing.T, path string, principal *entity.Principal) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/guard?path="+path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set("principal", principal)
	}

	return c, rec
}

func decodeDecision(t *testing.T, rec *httptest.ResponseRecorder) access.Decision {
	t.Helper()

	var envelope struct {
		Data access.Decision `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func TestGuardHandler_AnonymousAdminPath(t *testing.T) {
	handler := NewGuardHandler(access.NewResolver([]string{"owner@draftdesk.example"}))

	c, rec := guardContext(t, "/admin/leads", nil)
	require.NoError(t, handler.Decide(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	decision := decodeDecision(t, rec)
	assert.Equal(t, access.ActionRedirectLogin, decision.Action)
	assert.Equal(t, access.AdminLoginPath, decision.Location)
	assert.Equal(t, "/admin/leads", decision.From)
}

func TestGuardHandler_ClientOnAdminPath(t *testing.T) {
	handler := NewGuardHandler(access.NewResolver([]string{"owner@draftdesk.example"}))

	c, rec := guardContext(t, "/admin", &entity.Principal{UID: "u1", Email: "client@example.com"})
	require.NoError(t, handler.Decide(c))

	decision := decodeDecision(t, rec)
	assert.Equal(t, access.ActionRedirectClient, decision.Action)
	assert.Equal(t, access.ClientDashboardPath, decision.Location)
	assert.True(t, decision.AccessDenied)
	assert.Equal(t, access.AccessDeniedMessage, decision.Message)
}

func TestGuardHandler_AdminRenders(t *testing.T) {
	handler := NewGuardHandler(access.NewResolver([]string{"owner@draftdesk.example"}))

	c, rec := guardContext(t, "/admin", &entity.Principal{UID: "u1", Email: "owner@draftdesk.example"})
	require.NoError(t, handler.Decide(c))

	decision := decodeDecision(t, rec)
	assert.Equal(t, access.ActionRender, decision.Action)
	assert.Empty(t, decision.Location)
}

func TestGuardHandler_DefaultsToRootPath(t *testing.T) {
	handler := NewGuardHandler(access.NewResolver(nil))

	c, rec := guardContext(t, "", nil)
	require.NoError(t, handler.Decide(c))

	decision := decodeDecision(t, rec)
	assert.Equal(t, access.ActionRedirectLogin, decision.Action)
	assert.Equal(t, access.ClientLoginPath, decision.Location)
}
