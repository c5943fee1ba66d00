// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request body fails the
	// shared validation predicates.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials is returned for both unknown email and wrong
	// password so that login failures do not disclose account existence.
	ErrWrongCredentials = errors.New("invalid email or password")

	// ErrForbidden is returned when an authenticated identity attempts an
	// operation its role does not permit.
	ErrForbidden = errors.New("operation not permitted for this role")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure
	// (expired, wrong issuer, malformed, bad signature).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps failures of the token signing step.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
