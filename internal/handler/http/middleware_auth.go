// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/store"
	"github.com/flowdash/flowdash/internal/utils"
)

// auth is the HTTP middleware enforcing bearer-token authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken], resolves the token holder's account,
// and stores the user id and role in the request context under
// [utils.UserIDCtxKey] and [utils.RoleCtxKey] before delegating to the next
// handler.
//
// Every rejection — absent header, unparsable header, invalid or expired
// token, or a token whose account no longer exists — is a single 401
// envelope; the body never distinguishes the cases beyond the message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			respondError(w, contract.CodeUnauthorized, "authentication required")
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			respondError(w, contract.CodeUnauthorized, "authentication required")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			respondError(w, contract.CodeUnauthorized, "token is expired or invalid")
			return
		}

		// Resolve the holder so downstream handlers see a live role, not a
		// claim baked into a possibly stale token.
		tokenHolder, err := h.services.AuthService.CurrentUser(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Err(err).Str("id", token.UserID).Msg("token holder no longer exists")
				respondError(w, contract.CodeUnauthorized, "account no longer exists")
				return
			}
			log.Err(err).Msg("resolving token holder failed")
			respondError(w, contract.CodeServerError, http.StatusText(http.StatusInternalServerError))
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, tokenHolder.ID)
		ctx = context.WithValue(ctx, utils.RoleCtxKey, tokenHolder.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" header value of the form "Bearer <token>".
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — not two space-separated parts, or a
//     scheme other than "Bearer".
//   - [ErrEmptyToken] — the token part exists but is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
