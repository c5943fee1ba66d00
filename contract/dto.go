// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package contract

import "github.com/flowdash/flowdash/models"

// LoginDto is the credential-exchange request body for AUTH.LOGIN.
type LoginDto struct {
	// Email is the account email address. Matched case-insensitively.
	Email string `json:"email" validate:"required,email"`

	// Password is the plain-text password. It travels only inside the
	// request body and is never persisted as-is.
	Password string `json:"password" validate:"required"`
}

// RegisterDto is the self-registration request body for AUTH.REGISTER.
//
// It deliberately has no role field: self-registration always produces a
// regular user, and bodies carrying unknown keys (including "role") are
// rejected outright.
type RegisterDto struct {
	// Email must be unique among all accounts and match the shared email
	// predicate.
	Email string `json:"email" validate:"required,email"`

	// Password must satisfy the shared strength predicate.
	Password string `json:"password" validate:"required,password"`

	// Name is the display name shown in the UI.
	Name string `json:"name" validate:"required"`
}

// CreateUserDto is the admin-side user creation body for POST USERS.BASE.
type CreateUserDto struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Name     string `json:"name" validate:"required"`

	// Role defaults to the regular role when omitted. Only an administrator
	// may create another administrator.
	Role models.Role `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

// UpdateUserDto is the partial-update body for PATCH USERS.BASE/{id}.
// Nil fields are left untouched.
type UpdateUserDto struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`

	// Password, when present, is re-validated against the shared strength
	// predicate and re-hashed before storage.
	Password *string `json:"password,omitempty" validate:"omitempty,password"`

	// Role changes are permitted only when the acting identity is an
	// administrator.
	Role *models.Role `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

// AuthResponse is returned by a successful AUTH.LOGIN exchange.
type AuthResponse struct {
	// AccessToken is the signed bearer token. Opaque to the client.
	AccessToken string `json:"accessToken"`

	// User is the authenticated user record.
	User models.User `json:"user"`
}

// ApiResponse is the envelope shape common to all responses.
//
// On failure, Error carries exactly one [ErrorCode] tag and StatusCode is the
// HTTP status aligned with that tag; Data is the zero value. On success,
// Error is empty.
type ApiResponse[T any] struct {
	Data       T         `json:"data"`
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode"`
	Error      ErrorCode `json:"error,omitempty"`
}

// PaginatedResponse wraps one page of a collection listing.
type PaginatedResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}
