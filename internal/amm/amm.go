// Package amm runs per-fund bonding-curve markets: pool lifecycle, liquidity
// provisioning, quoting, and compliance-gated share trading.
package amm

import (
	"log/slog"

	"fundcore/internal/amm/handler"
	"fundcore/internal/amm/service"
)

// Service exposes pool and trading orchestration.
type Service = service.Service

// Handler exposes the pool HTTP surface.
type Handler = handler.Handler

// NewService constructs the AMM service.
func NewService(store service.Store, funds service.FundDirectory, eligibility service.EligibilityChecker, opts ...service.Option) *Service {
	return service.New(store, funds, eligibility, opts...)
}

// NewHandler constructs the pool HTTP handler.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
