// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, JSON response writing,
// JWT token generation and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/flowdash/flowdash/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user's identifier
// in the context. Set by the auth middleware after token validation.
var UserIDCtxKey = contextKey("userID")

// RoleCtxKey is the key used to store the authenticated user's role in the
// context. Set by the auth middleware alongside the user ID.
var RoleCtxKey = contextKey("role")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// GetRoleFromContext retrieves the acting identity's role from the context.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
