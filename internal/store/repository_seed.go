// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/models"
)

// seedRepository is the SQL-backed implementation of [SeedRepository].
type seedRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSeedRepository constructs a [SeedRepository] backed by the provided
// database connection and logger.
func NewSeedRepository(db *DB, logger *logger.Logger) SeedRepository {
	logger.Debug().Msg("creating seed repository")
	return &seedRepository{
		db:     db,
		logger: logger,
	}
}

// Wipe deletes all rows from every table, children before parents, inside
// one transaction so a partially wiped database never survives a failure.
func (r *seedRepository) Wipe(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*seedRepository.Wipe").Msg("error: begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"comments", "posts", "profiles", "users"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			log.Err(err).Str("func", "*seedRepository.Wipe").Str("table", table).Msg("error: wiping table")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*seedRepository.Wipe").Msg("error: commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// InsertPost writes one seed post row.
func (r *seedRepository) InsertPost(ctx context.Context, post models.Post) error {
	query, args, err := sq.Insert(post.TableName()).
		Columns("id", "title", "content", "published", "author_id", "created_at").
		Values(post.ID, post.Title, post.Content, post.Published, post.AuthorID, post.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// InsertComment writes one seed comment row.
func (r *seedRepository) InsertComment(ctx context.Context, comment models.Comment) error {
	query, args, err := sq.Insert(comment.TableName()).
		Columns("id", "content", "post_id", "created_at").
		Values(comment.ID, comment.Content, comment.PostID, comment.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

var _ SeedRepository = (*seedRepository)(nil)
