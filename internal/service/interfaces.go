// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

// Package service implements the business rules of the identity service:
// registration, credential verification, token lifecycle, and the
// user-administration surface.
package service

import (
	"context"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/models"
)

// AuthService owns registration, credential verification, and bearer token
// lifecycle.
type AuthService interface {
	// RegisterUser creates a regular-role account from a self-registration
	// request. The role in the stored record is always [models.RoleUser],
	// regardless of request content.
	RegisterUser(ctx context.Context, dto contract.RegisterDto) (models.User, error)

	// Login verifies the supplied credentials and returns the matching user.
	// Failure never discloses whether the email or the password was wrong.
	Login(ctx context.Context, dto contract.LoginDto) (models.User, error)

	// CreateToken issues a signed bearer token binding the user's id.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw bearer token string and returns the decoded
	// token, or [ErrTokenIsExpiredOrInvalid] on any validation failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// CurrentUser resolves the user record bound to an authenticated id.
	CurrentUser(ctx context.Context, userID string) (models.User, error)
}

// UserService owns the administrative create/read/update/delete surface over
// the User entity, including the role-elevation policy.
type UserService interface {
	// Create persists a new user on behalf of actorRole. Administrative
	// creation requires the actor to be an administrator.
	Create(ctx context.Context, actorRole models.Role, dto contract.CreateUserDto) (models.User, error)

	// Get fetches a single user by id.
	Get(ctx context.Context, id string) (models.User, error)

	// List returns one page of users plus the total count.
	List(ctx context.Context, page, pageSize int) ([]models.User, int, error)

	// Update applies a partial update. A role change requires the actor to
	// be an administrator; otherwise [ErrForbidden] is returned.
	Update(ctx context.Context, actorRole models.Role, id string, dto contract.UpdateUserDto) (models.User, error)

	// Delete removes a user and its profile attachment.
	Delete(ctx context.Context, id string) error
}
