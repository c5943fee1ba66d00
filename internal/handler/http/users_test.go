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
	"github.com/flowdash/flowdash/internal/service"
	"github.com/flowdash/flowdash/internal/store"
	"github.com/flowdash/flowdash/internal/utils"
	"github.com/flowdash/flowdash/models"
)

// withActor injects an authenticated identity into the request context the
// way the auth middleware would.
func withActor(req *http.Request, userID string, role models.Role) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	ctx = context.WithValue(ctx, utils.RoleCtxKey, role)
	return req.WithContext(ctx)
}

// ─────────────────────────────────────────────
// createUser
// ─────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	users := &mockUserService{
		createFn: func(_ context.Context, actorRole models.Role, dto contract.CreateUserDto) (models.User, error) {
			require.Equal(t, models.RoleAdmin, actorRole)
			return models.User{ID: "user-2", Email: dto.Email, Name: dto.Name, Role: models.RoleUser}, nil
		},
	}

	h := newTestHandler(t, nil, users)
	body := jsonBody(t, contract.CreateUserDto{Email: "bob@example.com", Password: "Secret123!", Name: "Bob"})
	req := httptest.NewRequest(http.MethodPost, contract.Endpoints.Users.Base, strings.NewReader(body))
	req = withActor(req, "admin-1", models.RoleAdmin)
	rec := httptest.NewRecorder()

	h.createUser(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope[models.User](t, rec.Body.Bytes())
	assert.Equal(t, "user-2", envelope.Data.ID)
}

// TestCreateUser_Forbidden verifies that the service's role policy surfaces
// as a 403 envelope.
func TestCreateUser_Forbidden(t *testing.T) {
	users := &mockUserService{
		createFn: func(_ context.Context, _ models.Role, _ contract.CreateUserDto) (models.User, error) {
			return models.User{}, service.ErrForbidden
		},
	}

	h := newTestHandler(t, nil, users)
	body := jsonBody(t, contract.CreateUserDto{Email: "bob@example.com", Password: "Secret123!", Name: "Bob"})
	req := httptest.NewRequest(http.MethodPost, contract.Endpoints.Users.Base, strings.NewReader(body))
	req = withActor(req, "user-1", models.RoleUser)
	rec := httptest.NewRecorder()

	h.createUser(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	envelope := decodeEnvelope[any](t, rec.Body.Bytes())
	assert.Equal(t, contract.CodeForbidden, envelope.Error)
	assert.Equal(t, http.StatusForbidden, envelope.StatusCode)
}

func TestCreateUser_UnknownField(t *testing.T) {
	h := newTestHandler(t, nil, &mockUserService{})

	body := `{"email":"b@example.com","password":"Secret123!","name":"B","isSuperuser":true}`
	req := httptest.NewRequest(http.MethodPost, contract.Endpoints.Users.Base, strings.NewReader(body))
	req = withActor(req, "admin-1", models.RoleAdmin)
	rec := httptest.NewRecorder()

	h.createUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// listUsers
// ─────────────────────────────────────────────

func TestListUsers_DefaultsAndMetadata(t *testing.T) {
	users := &mockUserService{
		listFn: func(_ context.Context, page, pageSize int) ([]models.User, int, error) {
			require.Equal(t, 1, page)
			require.Equal(t, contract.DefaultPageSize, pageSize)
			return []models.User{aliceUser}, 23, nil
		},
	}

	h := newTestHandler(t, nil, users)
	req := httptest.NewRequest(http.MethodGet, contract.Endpoints.Users.Base, nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope[contract.PaginatedResponse[models.User]](t, rec.Body.Bytes())
	assert.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, 23, envelope.Data.Total)
	assert.Equal(t, 3, envelope.Data.TotalPages) // ceil(23/10)
}

func TestListUsers_ExplicitPage(t *testing.T) {
	users := &mockUserService{
		listFn: func(_ context.Context, page, pageSize int) ([]models.User, int, error) {
			require.Equal(t, 2, page)
			require.Equal(t, 5, pageSize)
			return nil, 0, nil
		},
	}

	h := newTestHandler(t, nil, users)
	req := httptest.NewRequest(http.MethodGet, contract.Endpoints.Users.Base+"?page=2&pageSize=5", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestListUsers_ClampsPageGeometry verifies that zero and negative paging
// parameters are clamped before the service runs and before the total-pages
// arithmetic, so the request completes and the envelope reports the
// effective geometry.
func TestListUsers_ClampsPageGeometry(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"zero page size", "?pageSize=0"},
		{"negative page size", "?page=-3&pageSize=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				listFn: func(_ context.Context, page, pageSize int) ([]models.User, int, error) {
					require.Equal(t, 1, page)
					require.Equal(t, contract.DefaultPageSize, pageSize)
					return []models.User{aliceUser}, 23, nil
				},
			}

			h := newTestHandler(t, nil, users)
			req := httptest.NewRequest(http.MethodGet, contract.Endpoints.Users.Base+tt.query, nil)
			rec := httptest.NewRecorder()

			h.listUsers(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			envelope := decodeEnvelope[contract.PaginatedResponse[models.User]](t, rec.Body.Bytes())
			assert.Equal(t, 1, envelope.Data.Page)
			assert.Equal(t, contract.DefaultPageSize, envelope.Data.PageSize)
			assert.Equal(t, 3, envelope.Data.TotalPages)
		})
	}
}

// ─────────────────────────────────────────────
// getUser / updateUser / deleteUser
// ─────────────────────────────────────────────

func TestGetUser_NotFound(t *testing.T) {
	users := &mockUserService{
		getFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newTestHandler(t, nil, users)
	req := httptest.NewRequest(http.MethodGet, contract.Endpoints.Users.Base+"/missing", nil)
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope[any](t, rec.Body.Bytes())
	assert.Equal(t, contract.CodeNotFound, envelope.Error)
}

func TestUpdateUser_RoleChangeForbidden(t *testing.T) {
	users := &mockUserService{
		updateFn: func(_ context.Context, actorRole models.Role, _ string, _ contract.UpdateUserDto) (models.User, error) {
			require.Equal(t, models.RoleUser, actorRole)
			return models.User{}, service.ErrForbidden
		},
	}

	h := newTestHandler(t, nil, users)
	body := `{"role":"admin"}`
	req := httptest.NewRequest(http.MethodPatch, contract.Endpoints.Users.Base+"/user-1", strings.NewReader(body))
	req = withActor(req, "user-1", models.RoleUser)
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateUser_Success(t *testing.T) {
	users := &mockUserService{
		updateFn: func(_ context.Context, _ models.Role, id string, dto contract.UpdateUserDto) (models.User, error) {
			require.NotNil(t, dto.Name)
			return models.User{ID: id, Name: *dto.Name}, nil
		},
	}

	h := newTestHandler(t, nil, users)
	body := `{"name":"Renamed"}`
	req := httptest.NewRequest(http.MethodPatch, contract.Endpoints.Users.Base+"/user-1", strings.NewReader(body))
	req = withActor(req, "admin-1", models.RoleAdmin)
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUser_NotFound(t *testing.T) {
	users := &mockUserService{
		deleteFn: func(_ context.Context, _ string) error {
			return store.ErrNoUserWasFound
		},
	}

	h := newTestHandler(t, nil, users)
	req := httptest.NewRequest(http.MethodDelete, contract.Endpoints.Users.Base+"/missing", nil)
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_Success(t *testing.T) {
	users := &mockUserService{
		deleteFn: func(_ context.Context, _ string) error {
			return nil
		},
	}

	h := newTestHandler(t, nil, users)
	req := httptest.NewRequest(http.MethodDelete, contract.Endpoints.Users.Base+"/user-1", nil)
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope[any](t, rec.Body.Bytes())
	assert.Empty(t, envelope.Error)
}
