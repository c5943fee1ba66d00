// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package http

import (
	"errors"
	"net/http"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/service"
	"github.com/flowdash/flowdash/internal/store"
	"github.com/flowdash/flowdash/internal/utils"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto contract.RegisterDto
	if err := decodeStrict(r, &dto); err != nil {
		log.Err(err).Msg("invalid registration body")
		respondError(w, contract.CodeValidationError, "request body is malformed or carries unknown fields")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, dto)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid registration data provided")
			respondError(w, contract.CodeValidationError, "invalid email, password or name")
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			respondError(w, contract.CodeValidationError, "email is already registered")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			respondError(w, contract.CodeServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	log.Debug().Str("id", registeredUser.ID).Msg("user successfully registered")

	// Registration does not log the user in; no token is issued here.
	respond(w, registeredUser, "user registered", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto contract.LoginDto
	if err := decodeStrict(r, &dto); err != nil {
		log.Err(err).Msg("invalid login body")
		respondError(w, contract.CodeValidationError, "request body is malformed or carries unknown fields")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, dto)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid login data provided")
			respondError(w, contract.CodeValidationError, "invalid email or password format")
			return
		case errors.Is(err, service.ErrWrongCredentials):
			// One message for unknown email and wrong password alike.
			log.Err(err).Msg("login rejected")
			respondError(w, contract.CodeUnauthorized, "invalid email or password")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			respondError(w, contract.CodeServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, contract.CodeServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	respond(w, contract.AuthResponse{
		AccessToken: token.SignedString,
		User:        foundUser,
	}, "login successful", http.StatusOK)
}

// me resolves the identity bound to the presented bearer token. A valid
// token whose account has since been deleted is an authentication failure,
// not a missing resource.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		respondError(w, contract.CodeUnauthorized, "authentication required")
		return
	}

	currentUser, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("id", userID).Msg("token holder no longer exists")
			respondError(w, contract.CodeUnauthorized, "account no longer exists")
			return
		}
		log.Err(err).Msg("unexpected error occurred resolving current user")
		respondError(w, contract.CodeServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	respond(w, currentUser, "", http.StatusOK)
}
