// Package fees validates fund fee parameters against protocol caps.
//
// This is pure policy: no state, no I/O. The registry consults it on every
// fund creation.
package fees

import (
	dErrors "fundcore/pkg/domain-errors"
)

// Protocol fee caps, in basis points.
const (
	MaxManagementFeeBps  = 500
	MaxPerformanceFeeBps = 3000
)

// Exported for errors.Is checks; both carry CodeInvalidInput.
var (
	ErrManagementFeeTooHigh  = dErrors.Newf(dErrors.CodeInvalidInput, "management fee exceeds %d bps cap", MaxManagementFeeBps)
	ErrPerformanceFeeTooHigh = dErrors.Newf(dErrors.CodeInvalidInput, "performance fee exceeds %d bps cap", MaxPerformanceFeeBps)
)

// ValidateFees checks both fee parameters against the protocol caps.
// The management fee is checked first, so a pair violating both bounds
// surfaces the management fee error.
func ValidateFees(managementFeeBps, performanceFeeBps uint32) error {
	if managementFeeBps > MaxManagementFeeBps {
		return ErrManagementFeeTooHigh
	}
	if performanceFeeBps > MaxPerformanceFeeBps {
		return ErrPerformanceFeeTooHigh
	}
	return nil
}
