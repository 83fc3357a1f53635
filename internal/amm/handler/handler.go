package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fundcore/internal/amm/models"
	"fundcore/internal/transport/http/shared"
	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
	"fundcore/pkg/requestcontext"
)

// Service defines the AMM operations the handler exposes.
type Service interface {
	CreatePool(ctx context.Context, fundID id.FundID, initialPrice int64, reserveRatioBps uint32) (*models.Pool, error)
	AddLiquidity(ctx context.Context, fundID id.FundID, amount int64) (*models.Pool, error)
	CalculatePrice(ctx context.Context, fundID id.FundID, shareAmount int64, isBuy bool) (models.Quote, error)
	BuyShares(ctx context.Context, investor id.InvestorID, fundID id.FundID, shareAmount int64) (*models.Pool, int64, error)
	SellShares(ctx context.Context, investor id.InvestorID, fundID id.FundID, shareAmount int64) (*models.Pool, int64, error)
	SetPoolActive(ctx context.Context, fundID id.FundID, active bool) (*models.Pool, error)
	GetPool(ctx context.Context, fundID id.FundID) (*models.Pool, error)
	GetShareBalance(ctx context.Context, fundID id.FundID, investor id.InvestorID) (int64, error)
}

// Handler wires pool and trading endpoints to the service.
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
		h.logger.Error("pool request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	shared.WriteError(w, err)
}

// Register mounts the pool routes. Trade endpoints read the caller identity
// the identity middleware placed in the request context.
func (h *Handler) Register(r chi.Router) {
	r.Post("/pools", h.handleCreatePool)
	r.Get("/pools/{fundID}", h.handleGetPool)
	r.Patch("/pools/{fundID}/status", h.handleSetStatus)
	r.Post("/pools/{fundID}/liquidity", h.handleAddLiquidity)
	r.Get("/pools/{fundID}/price", h.handlePrice)
	r.Post("/pools/{fundID}/buy", h.handleBuy)
	r.Post("/pools/{fundID}/sell", h.handleSell)
	r.Get("/pools/{fundID}/balances/{investorID}", h.handleBalance)
}

type createPoolRequest struct {
	FundID          string `json:"fund_id"`
	InitialPrice    int64  `json:"initial_price"`
	ReserveRatioBps uint32 `json:"reserve_ratio_bps"`
}

func (h *Handler) handleCreatePool(w http.ResponseWriter, r *http.Request) {
	var req createPoolRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	fundID, err := id.ParseFundID(req.FundID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	pool, err := h.service.CreatePool(r.Context(), fundID, req.InitialPrice, req.ReserveRatioBps)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, pool)
}

func (h *Handler) handleGetPool(w http.ResponseWriter, r *http.Request) {
	fundID, err := id.ParseFundID(chi.URLParam(r, "fundID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pool, err := h.service.GetPool(r.Context(), fundID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, pool)
}

type setStatusRequest struct {
	Active bool `json:"active"`
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	fundID, err := id.ParseFundID(chi.URLParam(r, "fundID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req setStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	pool, err := h.service.SetPoolActive(r.Context(), fundID, req.Active)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, pool)
}

type addLiquidityRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) handleAddLiquidity(w http.ResponseWriter, r *http.Request) {
	fundID, err := id.ParseFundID(chi.URLParam(r, "fundID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req addLiquidityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	pool, err := h.service.AddLiquidity(r.Context(), fundID, req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, pool)
}

func (h *Handler) handlePrice(w http.ResponseWriter, r *http.Request) {
	fundID, err := id.ParseFundID(chi.URLParam(r, "fundID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	amount, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)
	if err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeInvalidInput, "amount query parameter must be an integer"))
		return
	}
	var isBuy bool
	switch side := r.URL.Query().Get("side"); side {
	case "buy":
		isBuy = true
	case "sell":
		isBuy = false
	default:
		h.writeError(w, r, dErrors.New(dErrors.CodeInvalidInput, "side query parameter must be buy or sell"))
		return
	}

	quote, err := h.service.CalculatePrice(r.Context(), fundID, amount, isBuy)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, quote)
}

type tradeRequest struct {
	ShareAmount int64 `json:"share_amount"`
}

type tradeResponse struct {
	Pool    *models.Pool `json:"pool"`
	Balance int64        `json:"balance"`
}

func (h *Handler) handleBuy(w http.ResponseWriter, r *http.Request) {
	h.handleTrade(w, r, h.service.BuyShares)
}

func (h *Handler) handleSell(w http.ResponseWriter, r *http.Request) {
	h.handleTrade(w, r, h.service.SellShares)
}

func (h *Handler) handleTrade(w http.ResponseWriter, r *http.Request, settle func(context.Context, id.InvestorID, id.FundID, int64) (*models.Pool, int64, error)) {
	fundID, err := id.ParseFundID(chi.URLParam(r, "fundID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	investor := requestcontext.InvestorID(r.Context())
	if investor == "" {
		h.writeError(w, r, dErrors.New(dErrors.CodeUnauthorized, "investor identity is required"))
		return
	}
	var req tradeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	pool, balance, err := settle(r.Context(), investor, fundID, req.ShareAmount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, tradeResponse{Pool: pool, Balance: balance})
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	fundID, err := id.ParseFundID(chi.URLParam(r, "fundID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	investor, err := id.ParseInvestorID(chi.URLParam(r, "investorID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	balance, err := h.service.GetShareBalance(r.Context(), fundID, investor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"fund_id":  fundID.String(),
		"investor": investor.String(),
		"shares":   balance,
	})
}
