// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, email, name, password_hash, role, created_at, updated_at;`

	createProfile = `INSERT INTO profiles (user_id, bio, avatar)
    VALUES ($1, $2, $3);`

	findUserByEmail = `SELECT u.id, u.email, u.name, u.password_hash, u.role, u.created_at, u.updated_at,
           p.user_id, p.bio, p.avatar
    FROM users u
    LEFT JOIN profiles p ON p.user_id = u.id
    WHERE u.email = $1;`

	findUserByID = `SELECT u.id, u.email, u.name, u.password_hash, u.role, u.created_at, u.updated_at,
           p.user_id, p.bio, p.avatar
    FROM users u
    LEFT JOIN profiles p ON p.user_id = u.id
    WHERE u.id = $1;`

	deleteProfileByUserID = `DELETE FROM profiles WHERE user_id = $1;`
	deleteUserByID        = `DELETE FROM users WHERE id = $1;`

	countUsers = `SELECT COUNT(*) FROM users;`
)

// buildUpdateUserQuery dynamically builds the partial UPDATE statement for a
// user row. Only non-nil fields of update become SET clauses; updated_at is
// always refreshed so the server keeps authority over timestamps.
func buildUpdateUserQuery(id string, update UserUpdate, now time.Time) (string, []any, error) {
	builder := sq.Update("users").
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.Role != nil {
		builder = builder.Set("role", string(*update.Role))
	}

	return builder.ToSql()
}

// buildListUsersQuery builds the paginated listing SELECT. Pages are
// 1-indexed; ordering by created_at keeps pages stable as rows are added.
func buildListUsersQuery(page, pageSize int) (string, []any, error) {
	offset := (page - 1) * pageSize

	return sq.Select(
		"u.id", "u.email", "u.name", "u.password_hash", "u.role", "u.created_at", "u.updated_at",
		"p.user_id", "p.bio", "p.avatar",
	).
		From("users u").
		LeftJoin("profiles p ON p.user_id = u.id").
		OrderBy("u.created_at ASC", "u.id ASC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
