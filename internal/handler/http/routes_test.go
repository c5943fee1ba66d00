// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/models"
)

// TestRouter_RefreshNotMounted verifies that the refresh endpoint exists
// only as a catalog name: the router treats it as any other unknown path.
func TestRouter_RefreshNotMounted(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockUserService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, contract.Endpoints.Auth.Refresh, strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope[any](t, rec.Body.Bytes())
	assert.Equal(t, contract.CodeNotFound, envelope.Error)
}

// TestRouter_UsersRequireAuth verifies that every user-administration route
// sits behind the bearer middleware.
func TestRouter_UsersRequireAuth(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockUserService{})
	router := h.Init()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, contract.Endpoints.Users.Base},
		{http.MethodGet, contract.Endpoints.Users.Base},
		{http.MethodGet, contract.Endpoints.Users.Base + "/user-1"},
		{http.MethodPatch, contract.Endpoints.Users.Base + "/user-1"},
		{http.MethodDelete, contract.Endpoints.Users.Base + "/user-1"},
		{http.MethodGet, contract.Endpoints.Auth.Me},
	}

	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s should require a bearer token", p.method, p.path)
	}
}

// TestRouter_LoginIsOpen verifies that the credential-exchange endpoint is
// reachable without a token.
func TestRouter_LoginIsOpen(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ contract.LoginDto) (models.User, error) {
			return aliceUser, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("signed"), nil
		},
	}
	h := newTestHandler(t, auth, &mockUserService{})
	router := h.Init()

	body := jsonBody(t, contract.LoginDto{Email: "alice@example.com", Password: "Secret123!"})
	req := httptest.NewRequest(http.MethodPost, contract.Endpoints.Auth.Login, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestRouter_UnsupportedMethod verifies that a wrong method on a known path
// reads as 404, hiding the route table from probing.
func TestRouter_UnsupportedMethod(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockUserService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPut, contract.Endpoints.Auth.Login, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestRouter_TraceIDHeader verifies that every response carries a trace id,
// echoing the inbound one when present.
func TestRouter_TraceIDHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockUserService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, contract.Endpoints.Auth.Refresh, nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))

	req = httptest.NewRequest(http.MethodPost, contract.Endpoints.Auth.Refresh, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

// TestRouter_Preflight verifies that a CORS preflight short-circuits before
// authentication.
func TestRouter_Preflight(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockUserService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodOptions, contract.Endpoints.Users.Base, nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestRouter_PanicBecomesServerError verifies that a panicking handler
// surfaces as a 500 envelope instead of a torn connection.
func TestRouter_PanicBecomesServerError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ contract.LoginDto) (models.User, error) {
			panic("boom")
		},
	}
	h := newTestHandler(t, auth, &mockUserService{})
	router := h.Init()

	body := jsonBody(t, contract.LoginDto{Email: "alice@example.com", Password: "Secret123!"})
	req := httptest.NewRequest(http.MethodPost, contract.Endpoints.Auth.Login, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope[any](t, rec.Body.Bytes())
	assert.Equal(t, contract.CodeServerError, envelope.Error)
}
