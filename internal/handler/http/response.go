// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/service"
	"github.com/flowdash/flowdash/internal/store"
	"github.com/flowdash/flowdash/internal/utils"
)

// respond writes a success envelope. The envelope's statusCode mirrors the
// HTTP status line.
func respond[T any](w http.ResponseWriter, data T, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, contract.ApiResponse[T]{
		Data:       data,
		Message:    message,
		StatusCode: statusCode,
	}, statusCode)
}

// respondError writes a failure envelope carrying exactly one error tag.
// The HTTP status is derived from the tag and never set independently.
func respondError(w http.ResponseWriter, code contract.ErrorCode, message string) {
	statusCode := code.HTTPStatus()
	_, _ = utils.WriteJSON(w, contract.ApiResponse[any]{
		Message:    message,
		StatusCode: statusCode,
		Error:      code,
	}, statusCode)
}

// errorCodeMap pins each known service and store error to its contract tag.
// A duplicate email at registration is a validation failure on the wire,
// not a conflict, so the client can surface it next to format errors.
var errorCodeMap = map[error]contract.ErrorCode{
	service.ErrInvalidDataProvided:     contract.CodeValidationError,
	service.ErrWrongCredentials:        contract.CodeUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: contract.CodeUnauthorized,
	service.ErrForbidden:               contract.CodeForbidden,

	store.ErrEmailAlreadyExists: contract.CodeValidationError,
	store.ErrNoUserWasFound:     contract.CodeNotFound,
}

// codeFromError resolves an error chain to its contract tag. Anything not
// pinned in the map is an internal failure.
func codeFromError(err error) contract.ErrorCode {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return contract.CodeServerError
}

// decodeStrict unmarshals a request body into dst, rejecting bodies that
// carry keys the target type does not declare.
func decodeStrict(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
