// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package store

import (
	"context"

	"github.com/flowdash/flowdash/models"
)

// UserUpdate describes a partial update of a user row. Only non-nil fields
// are written; UpdatedAt is always refreshed by the repository.
type UserUpdate struct {
	Name         *string
	PasswordHash *string
	Role         *models.Role
}

// UserRepository defines persistence operations over the users table.
// Implementations must enforce email uniqueness at the storage layer and
// perform the user+profile insertion atomically.
type UserRepository interface {
	// Insert persists a new user and, when user.Profile is non-nil, its
	// profile attachment within the same transaction. Returns the canonical
	// stored record or [ErrEmailAlreadyExists] on a uniqueness violation.
	Insert(ctx context.Context, user models.User) (models.User, error)

	// FindByEmail fetches a user by normalized email.
	// Returns [ErrNoUserWasFound] when no row matches.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID fetches a user by id.
	// Returns [ErrNoUserWasFound] when no row matches.
	FindByID(ctx context.Context, id string) (models.User, error)

	// UpdateByID applies a partial update and returns the refreshed record.
	// Returns [ErrNoUserWasFound] when no row matches.
	UpdateByID(ctx context.Context, id string, update UserUpdate) (models.User, error)

	// DeleteByID removes a user and its profile attachment.
	// Returns [ErrNoUserWasFound] when no row matches.
	DeleteByID(ctx context.Context, id string) error

	// List returns one page of users ordered by creation time, together
	// with the total row count for pagination metadata.
	List(ctx context.Context, page, pageSize int) ([]models.User, int, error)
}

// SeedRepository is the development-seed surface: it wipes existing rows and
// writes the seed-only content entities. No API route reaches it.
type SeedRepository interface {
	// Wipe removes all rows from every table in dependency order.
	Wipe(ctx context.Context) error

	// InsertPost writes one seed post.
	InsertPost(ctx context.Context, post models.Post) error

	// InsertComment writes one seed comment.
	InsertComment(ctx context.Context, comment models.Comment) error
}
