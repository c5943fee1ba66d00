// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. The
// same implementation serves both supported engines; queries stick to the
// portable subset of SQL (dollar placeholders, RETURNING on insert).
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new user record and, when user.Profile is set, its
// profile attachment inside one transaction, so a failed profile write never
// leaves an orphaned user behind.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique violation on the email column → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) Insert(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Insert").Msg("error: begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var saved models.User
	row := tx.QueryRowContext(ctx, createUser,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role),
		user.CreatedAt, user.UpdatedAt,
	)
	if err = row.Scan(&saved.ID, &saved.Email, &saved.Name, &saved.PasswordHash,
		&saved.Role, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.Insert").Msg("error: inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if user.Profile != nil {
		if _, err = tx.ExecContext(ctx, createProfile, saved.ID, user.Profile.Bio, user.Profile.Avatar); err != nil {
			log.Err(err).Str("func", "*userRepository.Insert").Msg("error: inserting profile")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
		saved.Profile = &models.Profile{
			UserID: saved.ID,
			Bio:    user.Profile.Bio,
			Avatar: user.Profile.Avatar,
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.Insert").Msg("error: commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// FindByEmail retrieves a user record (with its optional profile) whose
// email matches the given normalized email.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, findUserByEmail, email)
}

// FindByID retrieves a user record (with its optional profile) by id.
//
// Error handling mirrors [userRepository.FindByEmail].
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, findUserByID, id)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	var profileUserID, bio, avatar sql.NullString

	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&found.ID, &found.Email, &found.Name, &found.PasswordHash,
		&found.Role, &found.CreatedAt, &found.UpdatedAt,
		&profileUserID, &bio, &avatar); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if profileUserID.Valid {
		found.Profile = &models.Profile{
			UserID: profileUserID.String,
			Bio:    bio.String,
			Avatar: avatar.String,
		}
	}

	return found, nil
}

// UpdateByID applies a partial update built by [buildUpdateUserQuery] and
// returns the refreshed record.
//
// Error handling:
//   - zero affected rows → [ErrNoUserWasFound].
//   - unique violation → [ErrEmailAlreadyExists].
func (r *userRepository) UpdateByID(ctx context.Context, id string, update UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateByID").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateByID").Msg("error: executing update")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return r.FindByID(ctx, id)
}

// DeleteByID removes the user row and its profile attachment in one
// transaction. The profile is deleted explicitly so the behavior does not
// depend on foreign-key enforcement being enabled on the engine.
func (r *userRepository) DeleteByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByID").Msg("error: begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteProfileByUserID, id); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByID").Msg("error: deleting profile")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	result, err := tx.ExecContext(ctx, deleteUserByID, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByID").Msg("error: deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteByID").Msg("error: commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// List returns one page of users ordered by creation time plus the total
// row count.
func (r *userRepository) List(ctx context.Context, page, pageSize int) ([]models.User, int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(page, pageSize)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error: building query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error: executing query")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0, pageSize)
	for rows.Next() {
		var u models.User
		var profileUserID, bio, avatar sql.NullString
		if err = rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash,
			&u.Role, &u.CreatedAt, &u.UpdatedAt,
			&profileUserID, &bio, &avatar); err != nil {
			log.Err(err).Str("func", "*userRepository.List").Msg("error: scanning rows")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if profileUserID.Valid {
			u.Profile = &models.Profile{UserID: profileUserID.String, Bio: bio.String, Avatar: avatar.String}
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countUsers).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error: counting users")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, total, nil
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// on either supported engine: PostgreSQL code 23505 or SQLite's
// "UNIQUE constraint failed" message.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

var _ UserRepository = (*userRepository)(nil)
