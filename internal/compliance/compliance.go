// Package compliance is the investor compliance gate: proof submission,
// status reads with expiry correction, and trade eligibility checks.
package compliance

import (
	"log/slog"

	"fundcore/internal/compliance/handler"
	"fundcore/internal/compliance/service"
)

// Service exposes compliance gate orchestration.
type Service = service.Service

// Handler exposes the compliance HTTP surface.
type Handler = handler.Handler

// ProofVerifier checks external compliance attestations.
type ProofVerifier = service.ProofVerifier

// NewService constructs the compliance gate service.
func NewService(store service.Store, verifier service.ProofVerifier, opts ...service.Option) *Service {
	return service.New(store, verifier, opts...)
}

// NewJWTVerifier builds the default HMAC attestation verifier.
func NewJWTVerifier(signingKey string) *service.JWTVerifier {
	return service.NewJWTVerifier(signingKey)
}

// NewHandler constructs the compliance HTTP handler.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
