// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

// Package migrations embeds the goose SQL migrations of the identity
// service and applies them at startup. The SQL sticks to the portable
// subset understood by both supported engines.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations. The driver value matches the
// storage configuration: "pgx" or "sqlite3".
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
