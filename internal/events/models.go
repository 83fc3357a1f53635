// Package events defines the notification contract for external subscribers
// and the publishers that deliver it.
//
// Notifications are emitted after domain state has committed; they are
// fire-and-forget and never participate in the operation's transaction.
package events

import (
	"time"

	"github.com/google/uuid"

	id "fundcore/pkg/domain"
)

// Kind names a notification type.
type Kind string

const (
	KindFundCreated       Kind = "fund.created"
	KindFundStatusChanged Kind = "fund.status_changed"
	KindComplianceUpdated Kind = "compliance.updated"
	KindPoolCreated       Kind = "pool.created"
	KindLiquidityAdded    Kind = "pool.liquidity_added"
	KindSharesTraded      Kind = "pool.shares_traded"
)

// Event is the envelope every notification travels in. Payload is one of the
// typed payload structs below; it marshals to JSON for the wire.
type Event struct {
	ID      uuid.UUID `json:"id"`
	Kind    Kind      `json:"kind"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

// New builds an envelope with a fresh event ID.
func New(kind Kind, at time.Time, payload any) Event {
	return Event{ID: uuid.New(), Kind: kind, At: at, Payload: payload}
}

// FundCreated announces a new fund registration.
type FundCreated struct {
	FundID     id.FundID    `json:"fund_id"`
	Manager    id.ManagerID `json:"manager"`
	Name       string       `json:"name"`
	TargetSize int64        `json:"target_size"`
}

// FundStatusChanged announces an active-flag change by the fund manager.
type FundStatusChanged struct {
	FundID id.FundID `json:"fund_id"`
	Active bool      `json:"active"`
}

// ComplianceUpdated announces a verified compliance submission.
type ComplianceUpdated struct {
	Investor       id.InvestorID `json:"investor"`
	Status         string        `json:"status"`
	Classification string        `json:"classification"`
	ExpiresAt      time.Time     `json:"expires_at"`
}

// PoolCreated announces a new liquidity pool.
type PoolCreated struct {
	FundID          id.FundID `json:"fund_id"`
	InitialPrice    int64     `json:"initial_price"`
	ReserveRatioBps uint32    `json:"reserve_ratio_bps"`
}

// LiquidityAdded announces a liquidity provision.
type LiquidityAdded struct {
	FundID         id.FundID `json:"fund_id"`
	Amount         int64     `json:"amount"`
	TotalLiquidity int64     `json:"total_liquidity"`
}

// SharesTraded announces a settled trade.
type SharesTraded struct {
	FundID      id.FundID     `json:"fund_id"`
	Investor    id.InvestorID `json:"investor"`
	IsBuy       bool          `json:"is_buy"`
	ShareAmount int64         `json:"share_amount"`
	TotalPrice  int64         `json:"total_price"`
	SharePrice  int64         `json:"share_price"`
}

// EntityID returns the identifier notifications about this event key on, used
// to preserve per-entity ordering in partitioned transports.
func (e Event) EntityID() string {
	switch p := e.Payload.(type) {
	case FundCreated:
		return p.FundID.String()
	case FundStatusChanged:
		return p.FundID.String()
	case ComplianceUpdated:
		return p.Investor.String()
	case PoolCreated:
		return p.FundID.String()
	case LiquidityAdded:
		return p.FundID.String()
	case SharesTraded:
		return p.FundID.String()
	default:
		return e.ID.String()
	}
}
