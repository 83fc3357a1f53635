package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fundcore/internal/compliance/models"
	"fundcore/internal/transport/http/shared"
	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
)

// Service defines the compliance gate operations the handler exposes.
type Service interface {
	SubmitCompliance(ctx context.Context, investor id.InvestorID, proof []byte) (models.Record, error)
	VerifyCompliance(ctx context.Context, investor id.InvestorID, jurisdiction string) (models.Status, models.Classification, error)
	CheckEligibility(ctx context.Context, investor id.InvestorID, fundID id.FundID) (bool, string, error)
	GetComplianceExpiry(ctx context.Context, investor id.InvestorID) (time.Time, error)
}

// Handler wires compliance gate endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// writeError translates the error for the client; internal failures are also
// logged here since the envelope hides their detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.Error("compliance request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	shared.WriteError(w, err)
}

// Register mounts the compliance routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/compliance/submit", h.handleSubmit)
	r.Get("/compliance/{investorID}", h.handleVerify)
	r.Get("/compliance/{investorID}/eligibility", h.handleEligibility)
	r.Get("/compliance/{investorID}/expiry", h.handleExpiry)
}

type submitRequest struct {
	Investor string `json:"investor"`
	Proof    string `json:"proof"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	investor, err := id.ParseInvestorID(req.Investor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Proof == "" {
		h.writeError(w, r, dErrors.New(dErrors.CodeInvalidInput, "proof is required"))
		return
	}

	record, err := h.service.SubmitCompliance(r.Context(), investor, []byte(req.Proof))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	investor, err := id.ParseInvestorID(chi.URLParam(r, "investorID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	jurisdiction := r.URL.Query().Get("jurisdiction")

	status, classification, err := h.service.VerifyCompliance(r.Context(), investor, jurisdiction)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{
		"investor":       investor.String(),
		"status":         string(status),
		"classification": string(classification),
	})
}

func (h *Handler) handleEligibility(w http.ResponseWriter, r *http.Request) {
	investor, err := id.ParseInvestorID(chi.URLParam(r, "investorID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	fundID, err := id.ParseFundID(r.URL.Query().Get("fund"))
	if err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeInvalidInput, "fund query parameter is required"))
		return
	}

	eligible, reason, err := h.service.CheckEligibility(r.Context(), investor, fundID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"investor": investor.String(),
		"fund_id":  fundID.String(),
		"eligible": eligible,
		"reason":   reason,
	})
}

func (h *Handler) handleExpiry(w http.ResponseWriter, r *http.Request) {
	investor, err := id.ParseInvestorID(chi.URLParam(r, "investorID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	expiry, err := h.service.GetComplianceExpiry(r.Context(), investor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"investor":   investor.String(),
		"expires_at": expiry,
	})
}
