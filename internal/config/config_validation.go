// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.BcryptCost < 10 {
		errs = append(errs, errBcryptCostTooLow)
	}
	if cfg.App.HashWorkers < 1 {
		errs = append(errs, errNoHashWorkers)
	}
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		errs = append(errs, errUnknownDBDriver)
	}

	return errors.Join(errs...)
}
