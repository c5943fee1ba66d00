// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// passwordHasher wraps bcrypt behind a weighted semaphore. Hashing and
// verification are CPU-bound; bounding their concurrency keeps the work off
// the request-accepting path under load instead of letting every inbound
// registration burn a core.
type passwordHasher struct {
	cost int
	sem  *semaphore.Weighted
}

func newPasswordHasher(cost int, workers int64) *passwordHasher {
	return &passwordHasher{
		cost: cost,
		sem:  semaphore.NewWeighted(workers),
	}
}

// Hash derives the storage form of a plain-text password. Blocks while all
// hashing slots are busy; honours ctx cancellation while waiting.
func (h *passwordHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("acquiring hashing slot: %w", err)
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hash), nil
}

// Compare verifies a plain-text password against a stored hash under the
// same concurrency bound as Hash. Returns bcrypt's mismatch error when the
// password is wrong.
func (h *passwordHasher) Compare(ctx context.Context, hash, password string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquiring hashing slot: %w", err)
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
