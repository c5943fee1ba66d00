// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

// Package store implements the persistence layer of the identity service:
// database connectors for PostgreSQL and SQLite, the user repository, and
// the SQL queries they share.
package store

import (
	"database/sql"

	"github.com/flowdash/flowdash/internal/logger"
)

// DB wraps the standard library connection pool together with the
// application logger so that repositories constructed on top of it share
// one connection source.
type DB struct {
	*sql.DB
	logger *logger.Logger
}
