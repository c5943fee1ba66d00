// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

// Package contract is the single source of truth shared by the identity
// service and the session client: endpoint paths, client storage keys, error
// tags, request/response shapes, and the validation predicates applied
// identically on both sides.
//
// The package has no runtime behaviour beyond constant tables and pure
// predicates. Any change to a name, path, or shape defined here is a
// coordinated change across both processes; neither side tolerates silent
// schema drift.
package contract

// AuthEndpoints enumerates the authentication routes of the identity service.
type AuthEndpoints struct {
	// Login is the credential-exchange endpoint. POST only.
	Login string

	// Register is the self-registration endpoint. POST only.
	Register string

	// Refresh is reserved for a future token-refresh flow. The name is part
	// of the catalog, but no in-scope flow exercises it and the server does
	// not mount it.
	Refresh string

	// Me returns the identity bound to the presented bearer token. GET only.
	Me string
}

// UserEndpoints enumerates the user-administration routes.
type UserEndpoints struct {
	// Base is the users collection resource. Item routes are Base + "/{id}".
	Base string

	// Profile is the profile-management resource of the current user.
	Profile string
}

// Endpoints is the ordered endpoint catalog. Both the server router and the
// client transport derive their paths from this table and from nothing else.
var Endpoints = struct {
	Auth  AuthEndpoints
	Users UserEndpoints
}{
	Auth: AuthEndpoints{
		Login:    "/auth/login",
		Register: "/auth/register",
		Refresh:  "/auth/refresh",
		Me:       "/auth/me",
	},
	Users: UserEndpoints{
		Base:    "/users",
		Profile: "/users/profile",
	},
}

// Client-side storage keys. The access token cookie is the sole persistent
// client state.
const (
	// TokenKey is the cookie name under which the session client persists
	// the bearer token.
	TokenKey = "access_token"

	// RefreshTokenKey is reserved for a future refresh-token flow and is
	// unused by the in-scope flows.
	RefreshTokenKey = "refresh_token"
)

// DefaultPageSize is the pagination size applied when a list request does not
// specify one.
const DefaultPageSize = 10
