// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package utils

import (
	"context"
	"testing"

	"github.com/flowdash/flowdash/models"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "user-1")

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok to be true")
	}
	if userID != "user-1" {
		t.Errorf("expected user-1, got %s", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	if ok {
		t.Error("expected ok to be false for empty context")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, 42)

	_, ok := GetUserIDFromContext(ctx)
	if ok {
		t.Error("expected ok to be false for non-string value")
	}
}

func TestGetRoleFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RoleCtxKey, models.RoleAdmin)

	role, ok := GetRoleFromContext(ctx)
	if !ok {
		t.Fatal("expected ok to be true")
	}
	if role != models.RoleAdmin {
		t.Errorf("expected admin, got %s", role)
	}
}

func TestGetRoleFromContext_Missing(t *testing.T) {
	_, ok := GetRoleFromContext(context.Background())
	if ok {
		t.Error("expected ok to be false for empty context")
	}
}
