// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package store

import (
	"context"
	"fmt"

	"github.com/flowdash/flowdash/internal/config"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/migrations"
)

// Storages aggregates all repositories of the identity service behind one
// constructor so the composition root wires a single value.
type Storages struct {
	UserRepository UserRepository
	SeedRepository SeedRepository
}

// NewStorages opens the configured database engine, applies pending
// migrations, and constructs the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err = migrations.Migrate(db.DB, cfg.DB.Driver); err != nil {
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		SeedRepository: NewSeedRepository(db, log),
	}, nil
}
