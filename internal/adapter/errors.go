package adapter

import "errors"

var (
	ErrValidation   = errors.New("request rejected by validation")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("operation forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrServer       = errors.New("server error")
)
