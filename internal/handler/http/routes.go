// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowdash/flowdash/contract"
)

// route is one row of the declarative route table. Paths come from the
// shared endpoint catalog; authed marks rows that pass through the bearer
// middleware before the handler runs.
type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
	authed  bool
}

// routes returns the full route table of the identity service.
//
// AUTH.REFRESH and USERS.PROFILE exist in the endpoint catalog but have no
// row here; requests to them fall through to the router's not-found
// handler.
func (h *Handler) routes() []route {
	return []route{
		{http.MethodPost, contract.Endpoints.Auth.Register, h.register, false},
		{http.MethodPost, contract.Endpoints.Auth.Login, h.login, false},
		{http.MethodGet, contract.Endpoints.Auth.Me, h.me, true},

		{http.MethodPost, contract.Endpoints.Users.Base, h.createUser, true},
		{http.MethodGet, contract.Endpoints.Users.Base, h.listUsers, true},
		{http.MethodGet, contract.Endpoints.Users.Base + "/{id}", h.getUser, true},
		{http.MethodPatch, contract.Endpoints.Users.Base + "/{id}", h.updateUser, true},
		{http.MethodDelete, contract.Endpoints.Users.Base + "/{id}", h.deleteUser, true},
	}
}

// Init builds the chi router from the route table.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover, h.withCORS)

	for _, rt := range h.routes() {
		handler := http.Handler(rt.handler)
		if rt.authed {
			handler = h.auth(handler)
		}
		router.Method(rt.method, rt.pattern, handler)
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, contract.CodeNotFound, "resource not found")
	})
	// An unsupported method on a known path is reported as 404 as well, so
	// probing cannot enumerate the route table.
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, contract.CodeNotFound, "resource not found")
	})

	return router
}
