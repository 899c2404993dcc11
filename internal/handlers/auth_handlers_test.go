package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zakihadj/souq/internal/models"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	h := &AuthHandler{Store: env.Store, Tokens: env.Tokens}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", map[string]any{
		"username": "layla",
		"password": "secret123",
		"email":    "layla@example.com",
	})
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "layla", user.Username)
	require.Equal(t, "user", user.Role)
	require.NotContains(t, rec.Body.String(), "secret123")

	// no session is established by registration
	require.Empty(t, rec.Result().Cookies())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	h := &AuthHandler{Store: env.Store, Tokens: env.Tokens}

	payload := map[string]any{"username": "layla", "password": "secret123"}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", payload)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = env.doJSONRequest(http.MethodPost, "/api/auth/register", payload)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Empty(t, rec.Result().Cookies())

	total, err := env.Store.CountUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
}

func TestRegisterMissingCredentials(t *testing.T) {
	env := newTestEnv(t)
	h := &AuthHandler{Store: env.Store, Tokens: env.Tokens}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", map[string]any{"username": "layla"})
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginSetsSessionCookies(t *testing.T) {
	env := newTestEnv(t)
	h := &AuthHandler{Store: env.Store, Tokens: env.Tokens}

	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", map[string]any{
		"username": "layla", "password": "secret123",
	})
	require.NoError(t, h.Register(c))

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", map[string]any{
		"username": "layla", "password": "secret123",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	names := map[string]bool{}
	for _, ck := range rec.Result().Cookies() {
		names[ck.Name] = true
		require.True(t, ck.HttpOnly)
	}
	require.True(t, names["accessToken"])
	require.True(t, names["refreshToken"])
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	h := &AuthHandler{Store: env.Store, Tokens: env.Tokens}

	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", map[string]any{
		"username": "layla", "password": "secret123",
	})
	require.NoError(t, h.Register(c))

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", map[string]any{
		"username": "layla", "password": "wrong",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, rec.Result().Cookies())
}

func TestMeAndProfileUpdate(t *testing.T) {
	env := newTestEnv(t)
	h := &AuthHandler{Store: env.Store, Tokens: env.Tokens}

	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", map[string]any{
		"username": "layla", "password": "secret123",
	})
	require.NoError(t, h.Register(c))

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", map[string]any{
		"username": "layla", "password": "secret123",
	})
	require.NoError(t, h.Login(c))

	var accessCookie, refreshCookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		switch ck.Name {
		case "accessToken":
			accessCookie = ck
		case "refreshToken":
			refreshCookie = ck
		}
	}
	require.NotNil(t, accessCookie)
	require.NotNil(t, refreshCookie)

	rec, c = env.doJSONRequest(http.MethodGet, "/api/auth/me", nil, accessCookie, refreshCookie)
	require.NoError(t, env.Tokens.AutoRefreshMiddleware(h.Me)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var me models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	require.Equal(t, "layla", me.Username)

	rec, c = env.doJSONRequest(http.MethodPatch, "/api/auth/profile", map[string]any{
		"name":  "Layla Hassan",
		"phone": "0501234567",
	}, accessCookie, refreshCookie)
	require.NoError(t, env.Tokens.AutoRefreshMiddleware(h.UpdateProfile)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, "Layla Hassan", updated.Name)
	require.Equal(t, "0501234567", updated.Phone)
}

func TestMeWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	h := &AuthHandler{Store: env.Store, Tokens: env.Tokens}

	_, c := env.doJSONRequest(http.MethodGet, "/api/auth/me", nil)
	err := env.Tokens.AutoRefreshMiddleware(h.Me)(c)
	require.Error(t, err)
}
