// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package http

import (
	"net/http"
	"time"

	"github.com/flowdash/flowdash/internal/logger"
)

// withLogging emits one structured line per request: method, URI, the status
// and body size captured by [responseWriter], and wall-clock duration. It
// runs inside withTraceID so every line carries the trace id.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
