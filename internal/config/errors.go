// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package config

import "errors"

var (
	// errBcryptCostTooLow rejects configurations whose password hashing cost
	// is below the minimum of 10 mandated for stored credentials.
	errBcryptCostTooLow = errors.New("bcrypt cost must be at least 10")

	// errNoHashWorkers rejects configurations that would allow zero
	// concurrent hashing slots and therefore deadlock every registration.
	errNoHashWorkers = errors.New("hash workers must be at least 1")

	// errUnknownDBDriver rejects drivers other than the two supported
	// storage engines.
	errUnknownDBDriver = errors.New(`db driver must be "pgx" or "sqlite3"`)
)
