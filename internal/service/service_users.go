// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/config"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/store"
	"github.com/flowdash/flowdash/internal/utils"
	"github.com/flowdash/flowdash/models"
)

// userService is the concrete implementation of [UserService].
type userService struct {
	userRepository store.UserRepository
	hasher         *passwordHasher
	ids            *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] over the given repository.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         newPasswordHasher(cfg.BcryptCost, cfg.HashWorkers),
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Create persists a new user on behalf of actorRole.
//
// Administrative creation is an admin-only operation regardless of the
// requested role; the role defaults to [models.RoleUser] when the body
// omits it.
func (s *userService) Create(ctx context.Context, actorRole models.Role, dto contract.CreateUserDto) (models.User, error) {
	log := logger.FromContext(ctx)

	if actorRole != models.RoleAdmin {
		log.Warn().Str("actor_role", string(actorRole)).Msg("non-admin attempted user creation")
		return models.User{}, ErrForbidden
	}

	if err := contract.ValidateStruct(dto); err != nil {
		log.Err(err).Str("email", dto.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	role := dto.Role
	if role == "" {
		role = models.RoleUser
	}

	hash, err := s.hasher.Hash(ctx, dto.Password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           s.ids.Generate(),
		Email:        contract.NormalizeEmail(dto.Email),
		Name:         dto.Name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	createdUser, err := s.userRepository.Insert(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Get fetches a single user by id.
func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	foundUser, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// List returns one page of users plus the total count. Page and pageSize
// are clamped to sane values; the default page size comes from the
// contract.
func (s *userService) List(ctx context.Context, page, pageSize int) ([]models.User, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = contract.DefaultPageSize
	}

	users, total, err := s.userRepository.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("user listing failed: %w", err)
	}

	return users, total, nil
}

// Update applies a partial update.
//
// A role change is permitted only when the acting identity is an
// administrator; otherwise [ErrForbidden] is returned before anything is
// written. A new password is re-validated against the shared strength
// predicate and re-hashed.
func (s *userService) Update(ctx context.Context, actorRole models.Role, id string, dto contract.UpdateUserDto) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := contract.ValidateStruct(dto); err != nil {
		log.Err(err).Str("id", id).Msg("invalid update data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if dto.Role != nil && actorRole != models.RoleAdmin {
		log.Warn().Str("actor_role", string(actorRole)).Str("id", id).Msg("non-admin attempted a role change")
		return models.User{}, ErrForbidden
	}

	update := store.UserUpdate{
		Name: dto.Name,
		Role: dto.Role,
	}
	if dto.Password != nil {
		hash, err := s.hasher.Hash(ctx, *dto.Password)
		if err != nil {
			return models.User{}, err
		}
		update.PasswordHash = &hash
	}

	updatedUser, err := s.userRepository.UpdateByID(ctx, id, update)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// Delete removes a user and its profile attachment.
func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.userRepository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
