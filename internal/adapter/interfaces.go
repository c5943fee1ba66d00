// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

// Package adapter provides the transport layer the session client uses to
// talk to the identity service.
//
// The primary abstraction is [IdentityAPI], which decouples the session
// layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPIdentityAPI]) built on resty; every path it
// requests comes from the shared endpoint catalog.
//
// Error values defined in errors.go are mapped from failure envelopes by
// mapAPIError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for the UNAUTHORIZED tag).
package adapter

import (
	"context"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_api_mock.go -package=mock

// IdentityAPI defines transport-agnostic communication with the identity
// service. Implementations are responsible for serialisation, bearer header
// management, and mapping failure envelopes to the sentinel values defined
// in this package.
type IdentityAPI interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty string clears it.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// Register submits a self-registration request. It never yields a
	// token; a successful registration still requires a separate Login.
	Register(ctx context.Context, dto contract.RegisterDto) (models.User, error)

	// Login exchanges credentials for a bearer token and the authenticated
	// user record. On success the token is stored via SetToken.
	Login(ctx context.Context, dto contract.LoginDto) (contract.AuthResponse, error)

	// Me resolves the identity bound to the currently stored bearer token.
	// Returns [ErrUnauthorized] (wrapped) when the token is absent, invalid,
	// expired, or its account no longer exists.
	Me(ctx context.Context) (models.User, error)
}
