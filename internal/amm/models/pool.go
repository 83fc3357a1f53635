package models

import (
	"time"

	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
)

// MaxReserveRatioBps caps the reserve ratio at 50%.
const MaxReserveRatioBps = 5000

// Basis point scale for price impact and drift arithmetic.
const bpsScale = 10000

// Drift multipliers applied to the base price after a settled trade.
const (
	buyDriftBps  = 10100
	sellDriftBps = 9900
)

// Pool is the bonding-curve market for one fund's shares.
//
// TotalLiquidity is a capacity counter: provisions raise it, trades check
// against it but never draw it down.
type Pool struct {
	FundID          id.FundID `json:"fund_id"`
	TotalLiquidity  int64     `json:"total_liquidity"`
	SharePrice      int64     `json:"share_price"`
	ReserveRatioBps uint32    `json:"reserve_ratio_bps"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewPool validates parameters and builds an empty active pool.
func NewPool(fundID id.FundID, initialPrice int64, reserveRatioBps uint32, now time.Time) (*Pool, error) {
	if initialPrice <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "initial price must be positive")
	}
	if reserveRatioBps > MaxReserveRatioBps {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "reserve ratio must not exceed %d bps", MaxReserveRatioBps)
	}
	return &Pool{
		FundID:          fundID,
		TotalLiquidity:  0,
		SharePrice:      initialPrice,
		ReserveRatioBps: reserveRatioBps,
		Active:          true,
		CreatedAt:       now,
	}, nil
}

// Quote is the price of a prospective trade at the current base price.
type Quote struct {
	SharePrice  int64 `json:"share_price"`
	PriceImpact int64 `json:"price_impact"`
	UnitPrice   int64 `json:"unit_price"`
	TotalPrice  int64 `json:"total_price"`
}

// QuoteTrade prices shareAmount shares against the pool's current base
// price. Buys pay the impact on top of the base price; sells absorb it, with
// the unit price clamped to 1 so large sells against a low base settle at the
// floor instead of going negative.
func (p *Pool) QuoteTrade(shareAmount int64, isBuy bool) Quote {
	impact := shareAmount * p.SharePrice / bpsScale

	var unitPrice int64
	if isBuy {
		unitPrice = p.SharePrice + impact
	} else {
		unitPrice = p.SharePrice - impact
		if unitPrice < 1 {
			unitPrice = 1
		}
	}

	return Quote{
		SharePrice:  p.SharePrice,
		PriceImpact: impact,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice * shareAmount,
	}
}

// ApplyDrift moves the base price after a settled trade: up 1% on buys, down
// 1% on sells, floored at 1 so the price stays positive.
func (p *Pool) ApplyDrift(isBuy bool) {
	if isBuy {
		p.SharePrice = p.SharePrice * buyDriftBps / bpsScale
	} else {
		p.SharePrice = p.SharePrice * sellDriftBps / bpsScale
	}
	if p.SharePrice < 1 {
		p.SharePrice = 1
	}
}

// ShareBalance is an investor's holding in one fund's pool.
type ShareBalance struct {
	FundID   id.FundID     `json:"fund_id"`
	Investor id.InvestorID `json:"investor"`
	Shares   int64         `json:"shares"`
}
