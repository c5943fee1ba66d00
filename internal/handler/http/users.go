// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/utils"
	"github.com/flowdash/flowdash/models"
)

// actorRole reads the authenticated caller's role placed in the context by
// the auth middleware.
func actorRole(r *http.Request) models.Role {
	role, _ := utils.GetRoleFromContext(r.Context())
	return role
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto contract.CreateUserDto
	if err := decodeStrict(r, &dto); err != nil {
		log.Err(err).Msg("invalid user creation body")
		respondError(w, contract.CodeValidationError, "request body is malformed or carries unknown fields")
		return
	}

	createdUser, err := h.services.UserService.Create(ctx, actorRole(r), dto)
	if err != nil {
		log.Err(err).Msg("user creation failed")
		respondError(w, codeFromError(err), "user creation failed")
		return
	}

	respond(w, createdUser, "user created", http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// Clamp to the same effective values the service uses, so the envelope
	// reports the page geometry that actually produced the items and the
	// total-pages arithmetic never sees a zero or negative size.
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(r, "pageSize", contract.DefaultPageSize)
	if pageSize < 1 {
		pageSize = contract.DefaultPageSize
	}

	users, total, err := h.services.UserService.List(ctx, page, pageSize)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		respondError(w, codeFromError(err), "user listing failed")
		return
	}

	totalPages := (total + pageSize - 1) / pageSize

	respond(w, contract.PaginatedResponse[models.User]{
		Items:      users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, "", http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	foundUser, err := h.services.UserService.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user lookup failed")
		respondError(w, codeFromError(err), "user not found")
		return
	}

	respond(w, foundUser, "", http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var dto contract.UpdateUserDto
	if err := decodeStrict(r, &dto); err != nil {
		log.Err(err).Str("id", id).Msg("invalid user update body")
		respondError(w, contract.CodeValidationError, "request body is malformed or carries unknown fields")
		return
	}

	updatedUser, err := h.services.UserService.Update(ctx, actorRole(r), id, dto)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user update failed")
		respondError(w, codeFromError(err), "user update failed")
		return
	}

	respond(w, updatedUser, "user updated", http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	if err := h.services.UserService.Delete(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("user deletion failed")
		respondError(w, codeFromError(err), "user deletion failed")
		return
	}

	respond[any](w, nil, "user deleted", http.StatusOK)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
