// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

// Package session implements the client-side authentication state machine:
// a cookie-persisted bearer token, an in-memory identity cache, and the
// login/register/logout/rehydration flows against the identity service.
//
// Every public operation reports through [Result] instead of panicking;
// transport and contract failures surface as Success=false with a display
// message.
package session

import (
	"context"
	"sync"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/adapter"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/models"
)

// Cookie posture of the persisted token: thirty days, whole site.
const (
	cookiePath   = "/"
	cookieMaxAge = 30 * 24 * 60 * 60
)

// LoginRedirectTarget is where the embedding UI should navigate after the
// session has been torn down.
const LoginRedirectTarget = "/login"

// Result is the uniform outcome shape of every session operation.
// Exactly one of Data and Error is meaningful, selected by Success.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](err error) Result[T] {
	return Result[T]{Error: err.Error()}
}

// Client owns the session state. All state transitions go through its
// methods; the zero value is not usable, construct via [NewClient].
type Client struct {
	api adapter.IdentityAPI
	jar CookieJar

	mu          sync.RWMutex
	currentUser *models.User

	logger *logger.Logger
}

// NewClient wires a session client over the given transport and jar. On
// construction the client is unauthenticated regardless of jar content;
// call [Client.Hydrate] to pick up a persisted session.
func NewClient(api adapter.IdentityAPI, jar CookieJar, logger *logger.Logger) *Client {
	return &Client{
		api:    api,
		jar:    jar,
		logger: logger,
	}
}

// Login exchanges credentials for a session. On success the bearer token is
// persisted in the jar under the contract's token key and the returned user
// becomes the cached identity. Whoever completes last wins; there is no
// cancellation of an in-flight login beyond ctx.
func (c *Client) Login(ctx context.Context, dto contract.LoginDto) Result[contract.AuthResponse] {
	authResponse, err := c.api.Login(ctx, dto)
	if err != nil {
		c.logger.Err(err).Msg("login failed")
		return fail[contract.AuthResponse](err)
	}

	c.jar.Set(Cookie{
		Name:   contract.TokenKey,
		Value:  authResponse.AccessToken,
		Path:   cookiePath,
		MaxAge: cookieMaxAge,
	})

	c.mu.Lock()
	user := authResponse.User
	c.currentUser = &user
	c.mu.Unlock()

	c.logger.Debug().Str("id", authResponse.User.ID).Msg("session established")

	return ok(authResponse)
}

// Register submits a self-registration request. A successful registration
// does not log the user in; the caller follows up with [Client.Login].
func (c *Client) Register(ctx context.Context, dto contract.RegisterDto) Result[models.User] {
	registeredUser, err := c.api.Register(ctx, dto)
	if err != nil {
		c.logger.Err(err).Msg("registration failed")
		return fail[models.User](err)
	}

	return ok(registeredUser)
}

// Logout tears the session down locally: the cookie is removed, the cached
// identity cleared, and the adapter's token dropped. No server call is
// involved; the token simply ages out. The result's data is the redirect
// target for the embedding UI.
func (c *Client) Logout(ctx context.Context) Result[string] {
	c.destroySession()

	return ok(LoginRedirectTarget)
}

// Check reports whether the session currently holds a token. It inspects
// only the jar; it does not verify the token against the server.
func (c *Client) Check(ctx context.Context) bool {
	cookie, found := c.jar.Get(contract.TokenKey)
	return found && cookie.Value != ""
}

// GetIdentity returns a copy of the cached user, or nil while
// unauthenticated or before hydration completes.
func (c *Client) GetIdentity() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.currentUser == nil {
		return nil
	}
	user := *c.currentUser
	return &user
}

// GetPermissions returns the cached user's role, or nil while
// unauthenticated.
func (c *Client) GetPermissions() *models.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.currentUser == nil {
		return nil
	}
	role := c.currentUser.Role
	return &role
}

// Hydrate restores a session at application start. When the jar holds a
// token, it is handed to the transport and verified against the identity
// service; a verified identity becomes the cache. Any failure — absent
// cookie, expired token, deleted account, network fault — leaves the client
// unauthenticated and destroys the persisted cookie so the next start does
// not retry a dead token.
func (c *Client) Hydrate(ctx context.Context) Result[models.User] {
	cookie, found := c.jar.Get(contract.TokenKey)
	if !found || cookie.Value == "" {
		c.destroySession()
		return fail[models.User](adapter.ErrUnauthorized)
	}

	c.api.SetToken(cookie.Value)

	currentUser, err := c.api.Me(ctx)
	if err != nil {
		c.logger.Err(err).Msg("session rehydration failed")
		c.destroySession()
		return fail[models.User](err)
	}

	c.mu.Lock()
	user := currentUser
	c.currentUser = &user
	c.mu.Unlock()

	c.logger.Debug().Str("id", currentUser.ID).Msg("session rehydrated")

	return ok(currentUser)
}

// destroySession clears every trace of the session: jar cookie, cached
// identity, transport token.
func (c *Client) destroySession() {
	c.jar.Delete(contract.TokenKey)
	c.api.SetToken("")

	c.mu.Lock()
	c.currentUser = nil
	c.mu.Unlock()
}
