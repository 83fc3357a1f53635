package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundcore/internal/fund/models"
	"fundcore/internal/transport/http/shared"
	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
)

// Service defines the fund registry operations the handler exposes.
type Service interface {
	CreateFund(ctx context.Context, manager id.ManagerID, name string, targetSize, minInvestment int64, managementFeeBps, performanceFeeBps uint32) (*models.Fund, error)
	UpdateFundStatus(ctx context.Context, caller id.ManagerID, fundID id.FundID, active bool) (*models.Fund, error)
	GetFundDetails(ctx context.Context, fundID id.FundID) (*models.Fund, error)
	GetManagerFunds(ctx context.Context, manager id.ManagerID) ([]id.FundID, error)
	GetTotalFunds(ctx context.Context) (int, error)
}

// Handler wires fund registry endpoints to the service.
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
		h.logger.Error("fund request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	shared.WriteError(w, err)
}

// Register mounts the fund registry routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/funds", h.handleCreateFund)
	r.Get("/funds/count", h.handleTotalFunds)
	r.Get("/funds/{fundID}", h.handleFundDetails)
	r.Patch("/funds/{fundID}/status", h.handleUpdateStatus)
	r.Get("/managers/{managerID}/funds", h.handleManagerFunds)
}

type createFundRequest struct {
	Manager           string `json:"manager"`
	Name              string `json:"name"`
	TargetSize        int64  `json:"target_size"`
	MinInvestment     int64  `json:"min_investment"`
	ManagementFeeBps  uint32 `json:"management_fee_bps"`
	PerformanceFeeBps uint32 `json:"performance_fee_bps"`
}

func (h *Handler) handleCreateFund(w http.ResponseWriter, r *http.Request) {
	var req createFundRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	manager, err := id.ParseManagerID(req.Manager)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	fund, err := h.service.CreateFund(r.Context(), manager, req.Name,
		req.TargetSize, req.MinInvestment, req.ManagementFeeBps, req.PerformanceFeeBps)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, fund)
}

type updateStatusRequest struct {
	Caller string `json:"caller"`
	Active bool   `json:"active"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	fundID, err := id.ParseFundID(chi.URLParam(r, "fundID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req updateStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	caller, err := id.ParseManagerID(req.Caller)
	if err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeInvalidInput, "caller is required"))
		return
	}

	fund, err := h.service.UpdateFundStatus(r.Context(), caller, fundID, req.Active)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, fund)
}

func (h *Handler) handleFundDetails(w http.ResponseWriter, r *http.Request) {
	fundID, err := id.ParseFundID(chi.URLParam(r, "fundID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	fund, err := h.service.GetFundDetails(r.Context(), fundID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, fund)
}

func (h *Handler) handleManagerFunds(w http.ResponseWriter, r *http.Request) {
	manager, err := id.ParseManagerID(chi.URLParam(r, "managerID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	fundIDs, err := h.service.GetManagerFunds(r.Context(), manager)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"manager": manager,
		"funds":   fundIDs,
	})
}

func (h *Handler) handleTotalFunds(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.GetTotalFunds(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]int{"total_funds": count})
}
