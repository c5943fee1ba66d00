// Package http implements the HTTP transport layer of the identity service.
// It provides middleware, route handlers, and the response envelope shared
// with the session client. Authentication, logging, tracing, and panic
// recovery are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
