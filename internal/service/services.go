// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package service

import (
	"github.com/flowdash/flowdash/internal/config"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/store"
)

// Services aggregates all business-rule services behind one constructor so
// the composition root wires a single value.
type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		UserService: NewUserService(storages.UserRepository, cfg, logger),
	}
}
