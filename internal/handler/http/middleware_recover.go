// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package http

import (
	"net/http"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/logger"
)

// withRecover turns a downstream panic into a 500 envelope instead of a
// torn connection. The stack is logged; the response body carries only the
// generic tag.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromRequest(r)
				log.Error().Any("panic", rec).Stack().Msg("handler panicked")
				respondError(w, contract.CodeServerError, http.StatusText(http.StatusInternalServerError))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
