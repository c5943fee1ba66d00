// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/adapter"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/mock"
	"github.com/flowdash/flowdash/models"
)

var cachedUser = models.User{
	ID:    "user-1",
	Email: "alice@example.com",
	Name:  "Alice",
	Role:  models.RoleUser,
}

func newTestClient(t *testing.T) (*Client, *mock.MockIdentityAPI, CookieJar) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := mock.NewMockIdentityAPI(ctrl)
	jar := NewMemoryJar()

	return NewClient(api, jar, logger.Nop()), api, jar
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

// TestLogin_Success verifies that a successful exchange persists the token
// under the contract key with the thirty-day posture and caches the user.
func TestLogin_Success(t *testing.T) {
	client, api, jar := newTestClient(t)

	dto := contract.LoginDto{Email: "alice@example.com", Password: "Secret123!"}
	api.EXPECT().
		Login(gomock.Any(), dto).
		Return(contract.AuthResponse{AccessToken: "signed.jwt", User: cachedUser}, nil)

	result := client.Login(context.Background(), dto)

	require.True(t, result.Success)
	assert.Equal(t, "signed.jwt", result.Data.AccessToken)

	cookie, found := jar.Get(contract.TokenKey)
	require.True(t, found)
	assert.Equal(t, "signed.jwt", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 30*24*60*60, cookie.MaxAge)

	identity := client.GetIdentity()
	require.NotNil(t, identity)
	assert.Equal(t, cachedUser.ID, identity.ID)
}

func TestLogin_Failure(t *testing.T) {
	client, api, jar := newTestClient(t)

	dto := contract.LoginDto{Email: "alice@example.com", Password: "Wrong1234!"}
	api.EXPECT().
		Login(gomock.Any(), dto).
		Return(contract.AuthResponse{}, adapter.ErrUnauthorized)

	result := client.Login(context.Background(), dto)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	_, found := jar.Get(contract.TokenKey)
	assert.False(t, found)
	assert.Nil(t, client.GetIdentity())
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

// TestRegister_DoesNotLogIn verifies that registration leaves the session
// unauthenticated; the caller must log in separately.
func TestRegister_DoesNotLogIn(t *testing.T) {
	client, api, jar := newTestClient(t)

	dto := contract.RegisterDto{Email: "bob@example.com", Password: "Secret123!", Name: "Bob"}
	api.EXPECT().
		Register(gomock.Any(), dto).
		Return(models.User{ID: "user-2", Email: dto.Email, Name: dto.Name, Role: models.RoleUser}, nil)

	result := client.Register(context.Background(), dto)

	require.True(t, result.Success)
	assert.Equal(t, "user-2", result.Data.ID)

	_, found := jar.Get(contract.TokenKey)
	assert.False(t, found)
	assert.Nil(t, client.GetIdentity())
	assert.False(t, client.Check(context.Background()))
}

func TestRegister_Failure(t *testing.T) {
	client, api, _ := newTestClient(t)

	dto := contract.RegisterDto{Email: "taken@example.com", Password: "Secret123!", Name: "Bob"}
	api.EXPECT().
		Register(gomock.Any(), dto).
		Return(models.User{}, adapter.ErrValidation)

	result := client.Register(context.Background(), dto)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

// ─────────────────────────────────────────────
// Logout
// ─────────────────────────────────────────────

// TestLogout_LocalOnly verifies that logout never calls the server: it
// clears the jar, the cached identity, and the transport token, then points
// the UI at the login page.
func TestLogout_LocalOnly(t *testing.T) {
	client, api, jar := newTestClient(t)

	dto := contract.LoginDto{Email: "alice@example.com", Password: "Secret123!"}
	api.EXPECT().
		Login(gomock.Any(), dto).
		Return(contract.AuthResponse{AccessToken: "signed.jwt", User: cachedUser}, nil)
	api.EXPECT().SetToken("")

	client.Login(context.Background(), dto)

	result := client.Logout(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, LoginRedirectTarget, result.Data)

	_, found := jar.Get(contract.TokenKey)
	assert.False(t, found)
	assert.Nil(t, client.GetIdentity())
	assert.Nil(t, client.GetPermissions())
}

// ─────────────────────────────────────────────
// Check / GetIdentity / GetPermissions
// ─────────────────────────────────────────────

// TestCheck_InspectsJarOnly verifies that Check never hits the network.
func TestCheck_InspectsJarOnly(t *testing.T) {
	client, _, jar := newTestClient(t)

	assert.False(t, client.Check(context.Background()))

	jar.Set(Cookie{Name: contract.TokenKey, Value: "anything"})
	assert.True(t, client.Check(context.Background()))

	jar.Set(Cookie{Name: contract.TokenKey, Value: ""})
	assert.False(t, client.Check(context.Background()))
}

func TestGetIdentity_ReturnsCopy(t *testing.T) {
	client, api, _ := newTestClient(t)

	dto := contract.LoginDto{Email: "alice@example.com", Password: "Secret123!"}
	api.EXPECT().
		Login(gomock.Any(), dto).
		Return(contract.AuthResponse{AccessToken: "signed.jwt", User: cachedUser}, nil)

	client.Login(context.Background(), dto)

	first := client.GetIdentity()
	require.NotNil(t, first)
	first.Name = "Mutated"

	second := client.GetIdentity()
	require.NotNil(t, second)
	assert.Equal(t, "Alice", second.Name)
}

func TestGetPermissions_Unauthenticated(t *testing.T) {
	client, _, _ := newTestClient(t)

	assert.Nil(t, client.GetPermissions())
	assert.Nil(t, client.GetIdentity())
}

// ─────────────────────────────────────────────
// Hydrate
// ─────────────────────────────────────────────

func TestHydrate_NoCookie(t *testing.T) {
	client, api, _ := newTestClient(t)

	api.EXPECT().SetToken("")

	result := client.Hydrate(context.Background())

	assert.False(t, result.Success)
	assert.Nil(t, client.GetIdentity())
}

// TestHydrate_Success verifies that a persisted token is handed to the
// transport and the verified identity becomes the cache.
func TestHydrate_Success(t *testing.T) {
	client, api, jar := newTestClient(t)

	jar.Set(Cookie{Name: contract.TokenKey, Value: "persisted.jwt", Path: "/", MaxAge: cookieMaxAge})

	gomock.InOrder(
		api.EXPECT().SetToken("persisted.jwt"),
		api.EXPECT().Me(gomock.Any()).Return(cachedUser, nil),
	)

	result := client.Hydrate(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, cachedUser.ID, result.Data.ID)

	identity := client.GetIdentity()
	require.NotNil(t, identity)
	assert.Equal(t, cachedUser.Email, identity.Email)

	permissions := client.GetPermissions()
	require.NotNil(t, permissions)
	assert.Equal(t, models.RoleUser, *permissions)
}

// TestHydrate_DeadToken verifies that a rejected token destroys the cookie
// so the next start does not retry it.
func TestHydrate_DeadToken(t *testing.T) {
	client, api, jar := newTestClient(t)

	jar.Set(Cookie{Name: contract.TokenKey, Value: "expired.jwt", Path: "/", MaxAge: cookieMaxAge})

	gomock.InOrder(
		api.EXPECT().SetToken("expired.jwt"),
		api.EXPECT().Me(gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized),
		api.EXPECT().SetToken(""),
	)

	result := client.Hydrate(context.Background())

	assert.False(t, result.Success)

	_, found := jar.Get(contract.TokenKey)
	assert.False(t, found)
	assert.Nil(t, client.GetIdentity())
}

// ─────────────────────────────────────────────
// memoryJar
// ─────────────────────────────────────────────

func TestMemoryJar(t *testing.T) {
	jar := NewMemoryJar()

	_, found := jar.Get("absent")
	assert.False(t, found)

	jar.Set(Cookie{Name: "k", Value: "v1"})
	jar.Set(Cookie{Name: "k", Value: "v2"})

	cookie, found := jar.Get("k")
	require.True(t, found)
	assert.Equal(t, "v2", cookie.Value)

	jar.Delete("k")
	jar.Delete("k") // absent delete is a no-op

	_, found = jar.Get("k")
	assert.False(t, found)
}
