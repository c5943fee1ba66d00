// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

// Package models holds the entities shared between the identity service and
// the session client. Sensitive fields carry `json:"-"` tags so that they can
// never cross a process boundary, regardless of which endpoint serializes
// the value.
package models

import "time"

// Role is the user's access level.
type Role string

const (
	// RoleAdmin marks an administrator. Only administrators may create other
	// administrators or change roles.
	RoleAdmin Role = "admin"

	// RoleUser is the regular role assigned at self-registration.
	RoleUser Role = "user"
)

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents an account entity used for authentication and
// authorization.
type User struct {
	// ID is the opaque unique identifier assigned at creation (UUID form).
	// Stable for the lifetime of the account.
	ID string `json:"id"`

	// Email is the unique, case-insensitively matched account email.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password. It MUST never
	// be serialized into a response payload, hence the "-" tag.
	PasswordHash string `json:"-"`

	// Role is the user's access level. Defaults to [RoleUser] at
	// self-registration.
	Role Role `json:"role"`

	// CreatedAt and UpdatedAt are server-assigned. Client-supplied values
	// for these fields are ignored on every write path.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Profile is the optional one-to-one profile attachment. Created or
	// omitted at user-creation time and destroyed with the user.
	Profile *Profile `json:"profile,omitempty"`
}

// TableName returns the name of the database table associated with the
// User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the optional free-form attachment of a user.
type Profile struct {
	// UserID ties the profile to its owning user (primary and foreign key).
	UserID string `json:"-"`

	// Bio is a free-form biography string.
	Bio string `json:"bio"`

	// Avatar is the URL of the user's avatar image.
	Avatar string `json:"avatar"`
}

// TableName returns the name of the database table associated with the
// Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
