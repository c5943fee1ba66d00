// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/config"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/store"
	"github.com/flowdash/flowdash/internal/utils"
	"github.com/flowdash/flowdash/models"
)

// authService is the concrete implementation of [AuthService]. It handles
// registration, credential verification, and JWT token lifecycle using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// users.
	userRepository store.UserRepository

	// hasher bounds bcrypt work so hashing never monopolises the
	// request-accepting path.
	hasher *passwordHasher

	// dummyHash is compared against when a login targets an unknown email,
	// so both failure paths cost one bcrypt verification and response
	// timing does not reveal account existence.
	dummyHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	ids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	dummy, err := bcrypt.GenerateFromPassword([]byte("flowdash-dummy-credential"), cfg.BcryptCost)
	if err != nil {
		// bcrypt only fails here on an out-of-range cost, which config
		// validation has already ruled out.
		logger.Fatal().Err(err).Msg("generating dummy hash")
	}

	return &authService{
		userRepository: userRepository,
		hasher:         newPasswordHasher(cfg.BcryptCost, cfg.HashWorkers),
		dummyHash:      string(dummy),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// RegisterUser creates a new regular-role account.
//
// It validates the body against the shared predicates, normalizes the email,
// hashes the password, and delegates persistence to the UserRepository.
// Timestamps are assigned here; any client-supplied values never reach the
// storage layer because the DTO carries none.
//
// Returns the persisted user (with server-assigned ID and timestamps) or:
//   - [ErrInvalidDataProvided] if the body fails the shared predicates.
//   - [store.ErrEmailAlreadyExists] if the normalized email is taken.
func (a *authService) RegisterUser(ctx context.Context, dto contract.RegisterDto) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := contract.ValidateStruct(dto); err != nil {
		log.Err(err).Str("email", dto.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(ctx, dto.Password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           a.ids.Generate(),
		Email:        contract.NormalizeEmail(dto.Email),
		Name:         dto.Name,
		PasswordHash: hash,
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	registeredUser, err := a.userRepository.Insert(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The lookup key is the normalized email. When no account matches, the
// supplied password is still verified against a dummy hash so that the
// unknown-email and wrong-password paths are indistinguishable by timing,
// and both return [ErrWrongCredentials].
func (a *authService) Login(ctx context.Context, dto contract.LoginDto) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := contract.ValidateStruct(dto); err != nil {
		log.Err(err).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindByEmail(ctx, contract.NormalizeEmail(dto.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// Burn one bcrypt verification on the miss path as well.
			_ = a.hasher.Compare(ctx, a.dummyHash, dto.Password)
			log.Error().Msg("no account for login email")
			return models.User{}, ErrWrongCredentials
		}
		// A store fault is not a credential failure; let it surface as a
		// server error.
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(ctx, foundUser.PasswordHash, dto.Password); err != nil {
		log.Error().Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to [ErrTokenIsExpiredOrInvalid] so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// CurrentUser resolves the user record bound to an authenticated id. A
// token may outlive its account; callers treat a miss as an authentication
// failure, not as a missing resource.
func (a *authService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	foundUser, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
