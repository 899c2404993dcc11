package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/zakihadj/souq/internal/models"
	"github.com/zakihadj/souq/internal/service/token"
	"github.com/zakihadj/souq/internal/store"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	Store  *store.Store
	Tokens *token.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := store.Open(context.Background(), "")
	require.NoError(t, err)

	st, err := store.New(db)
	require.NoError(t, err)

	tokens := &token.TokenService{
		DB:            db,
		JWTSecret:     []byte("test-jwt-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}

	return &testEnv{
		T:      t,
		E:      echo.New(),
		Store:  st,
		Tokens: tokens,
	}
}

func (env *testEnv) doJSONRequest(method, target string, payload any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(env.T, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedProduct(name, price string) *models.Product {
	env.T.Helper()

	p, err := env.Store.CreateProduct(context.Background(), &models.Product{
		Name:       name,
		NameAr:     name + "-ar",
		Price:      price,
		CategoryID: "cat-1",
		InStock:    true,
	})
	require.NoError(env.T, err)
	return p
}
