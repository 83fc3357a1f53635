package models

import (
	"strings"
	"time"

	"fundcore/internal/fees"
	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
)

// Fund is the aggregate root for a registered fund.
//
// Invariants:
//   - TargetSize > 0
//   - ManagementFeeBps <= 500, PerformanceFeeBps <= 3000 (fee policy caps)
//   - ID is derived from (Manager, Name, CreatedAt) and never reused
//   - Only the owning manager may change Active
//   - Funds are never deleted, only deactivated
type Fund struct {
	ID                id.FundID    `json:"id"`
	Manager           id.ManagerID `json:"manager"`
	Name              string       `json:"name"`
	TargetSize        int64        `json:"target_size"`
	MinInvestment     int64        `json:"min_investment"`
	ManagementFeeBps  uint32       `json:"management_fee_bps"`
	PerformanceFeeBps uint32       `json:"performance_fee_bps"`
	Active            bool         `json:"active"`
	CreatedAt         time.Time    `json:"created_at"`
}

// NewFund validates parameters and constructs an active fund with its derived
// identifier.
func NewFund(manager id.ManagerID, name string, targetSize, minInvestment int64, managementFeeBps, performanceFeeBps uint32, now time.Time) (*Fund, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "fund name cannot be empty")
	}
	if len(name) > 128 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "fund name must be 128 characters or less")
	}
	if targetSize <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "target size must be positive")
	}
	if minInvestment < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "minimum investment cannot be negative")
	}
	if err := fees.ValidateFees(managementFeeBps, performanceFeeBps); err != nil {
		return nil, err
	}
	return &Fund{
		ID:                id.DeriveFundID(manager, name, now),
		Manager:           manager,
		Name:              name,
		TargetSize:        targetSize,
		MinInvestment:     minInvestment,
		ManagementFeeBps:  managementFeeBps,
		PerformanceFeeBps: performanceFeeBps,
		Active:            true,
		CreatedAt:         now,
	}, nil
}

// IsManagedBy reports whether caller owns this fund.
func (f *Fund) IsManagedBy(caller id.ManagerID) bool {
	return f.Manager == caller
}

// ApplyStatus sets the active flag. Authorization is the service's concern;
// the model only records the transition.
func (f *Fund) ApplyStatus(active bool) {
	f.Active = active
}
