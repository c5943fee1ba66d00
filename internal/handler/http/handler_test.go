// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/service"
	"github.com/flowdash/flowdash/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, dto contract.RegisterDto) (models.User, error)
	loginFn        func(ctx context.Context, dto contract.LoginDto) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	currentUserFn  func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, dto contract.RegisterDto) (models.User, error) {
	return m.registerUserFn(ctx, dto)
}

func (m *mockAuthService) Login(ctx context.Context, dto contract.LoginDto) (models.User, error) {
	return m.loginFn(ctx, dto)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return m.currentUserFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	createFn func(ctx context.Context, actorRole models.Role, dto contract.CreateUserDto) (models.User, error)
	getFn    func(ctx context.Context, id string) (models.User, error)
	listFn   func(ctx context.Context, page, pageSize int) ([]models.User, int, error)
	updateFn func(ctx context.Context, actorRole models.Role, id string, dto contract.UpdateUserDto) (models.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockUserService) Create(ctx context.Context, actorRole models.Role, dto contract.CreateUserDto) (models.User, error) {
	return m.createFn(ctx, actorRole, dto)
}

func (m *mockUserService) Get(ctx context.Context, id string) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) List(ctx context.Context, page, pageSize int) ([]models.User, int, error) {
	return m.listFn(ctx, page, pageSize)
}

func (m *mockUserService) Update(ctx context.Context, actorRole models.Role, id string, dto contract.UpdateUserDto) (models.User, error) {
	return m.updateFn(ctx, actorRole, id, dto)
}

func (m *mockUserService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks; nil mocks
// stay nil so an unexpected call panics loudly.
func newTestHandler(t *testing.T, auth service.AuthService, users service.UserService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AuthService: auth,
		UserService: users,
	}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeEnvelope unmarshals a recorded response body into an envelope of T.
func decodeEnvelope[T any](t *testing.T, body []byte) contract.ApiResponse[T] {
	t.Helper()
	var envelope contract.ApiResponse[T]
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// aliceUser is a convenience fixture used across multiple tests.
var aliceUser = models.User{
	ID:    "user-1",
	Email: "alice@example.com",
	Name:  "Alice",
	Role:  models.RoleUser,
}
