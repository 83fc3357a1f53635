// Package fund is the fund registry: deterministic fund identifiers, manager
// ownership, fee policy enforcement, and the active-flag lifecycle.
package fund

import (
	"log/slog"

	"fundcore/internal/fund/handler"
	"fundcore/internal/fund/service"
)

// Service exposes fund registry orchestration.
type Service = service.Service

// Handler wires HTTP endpoints to the fund registry service.
type Handler = handler.Handler

// NewService constructs the fund registry service.
func NewService(store service.Store, opts ...service.Option) *Service {
	return service.New(store, opts...)
}

// NewHandler constructs an HTTP handler for fund registry routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
