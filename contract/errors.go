// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package contract

import "net/http"

// ErrorCode is the machine-readable tag carried by every failure response.
// Each failure carries exactly one tag, and the envelope's StatusCode is
// always the HTTP status aligned with that tag.
type ErrorCode string

const (
	// CodeUnauthorized — no or invalid credentials: missing/expired token,
	// wrong password at login. HTTP 401.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeForbidden — authenticated but not allowed, e.g. a non-admin
	// attempting an admin-only mutation. HTTP 403.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeNotFound — the target entity does not exist. HTTP 404.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeValidationError — request shape or values invalid: malformed
	// email, weak password, unknown field, duplicate email at registration.
	// HTTP 400.
	CodeValidationError ErrorCode = "VALIDATION_ERROR"

	// CodeServerError — unexpected internal failure. HTTP 500.
	CodeServerError ErrorCode = "SERVER_ERROR"
)

// HTTPStatus returns the HTTP status code aligned with the tag.
// Unknown tags map to 500.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
