// Package domain defines the typed identifiers shared across modules.
//
// Manager and investor identities are opaque strings assigned by the
// settlement layer (account addresses, directory entries); this core never
// interprets them. Fund identifiers are derived here so the registry and the
// AMM agree on the derivation.
package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	dErrors "fundcore/pkg/domain-errors"
)

// ManagerID identifies a fund manager. Opaque to the core.
type ManagerID string

// InvestorID identifies an investor. Opaque to the core.
type InvestorID string

// FundID identifies a fund. Derived, never caller-supplied.
//
// Invariant: "fund_" prefix followed by 40 lowercase hex characters.
type FundID string

const (
	fundIDPrefix   = "fund_"
	fundIDHexLen   = 40
	maxIdentityLen = 256
)

func (m ManagerID) String() string  { return string(m) }
func (i InvestorID) String() string { return string(i) }
func (f FundID) String() string     { return string(f) }

// ParseManagerID validates an externally supplied manager identity.
func ParseManagerID(s string) (ManagerID, error) {
	if err := validateIdentity(s, "manager id"); err != nil {
		return "", err
	}
	return ManagerID(s), nil
}

// ParseInvestorID validates an externally supplied investor identity.
func ParseInvestorID(s string) (InvestorID, error) {
	if err := validateIdentity(s, "investor id"); err != nil {
		return "", err
	}
	return InvestorID(s), nil
}

func validateIdentity(s, what string) error {
	if s == "" {
		return dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", what)
	}
	if len(s) > maxIdentityLen {
		return dErrors.Newf(dErrors.CodeInvalidInput, "%s exceeds %d characters", what, maxIdentityLen)
	}
	return nil
}

// DeriveFundID derives the fund identifier from the creating manager, the
// fund name, and the creation timestamp. The derivation is deterministic so
// the same creation event always yields the same identifier; distinct inputs
// colliding within the same nanosecond is treated as a store-level conflict,
// never a silent overwrite.
func DeriveFundID(manager ManagerID, name string, createdAt time.Time) FundID {
	h := sha256.New()
	h.Write([]byte(manager))
	h.Write([]byte{0})
	h.Write([]byte(name))
	h.Write([]byte{0})
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(createdAt.UnixNano()))
	h.Write(ts[:])
	sum := h.Sum(nil)
	return FundID(fundIDPrefix + hex.EncodeToString(sum[:fundIDHexLen/2]))
}

// ParseFundID validates an externally supplied fund identifier.
func ParseFundID(s string) (FundID, error) {
	if !strings.HasPrefix(s, fundIDPrefix) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "fund id must start with fund_")
	}
	body := strings.TrimPrefix(s, fundIDPrefix)
	if len(body) != fundIDHexLen {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "fund id body must be %d hex characters", fundIDHexLen)
	}
	if _, err := hex.DecodeString(body); err != nil {
		return "", dErrors.New(dErrors.CodeInvalidInput, "fund id body must be hex")
	}
	return FundID(s), nil
}
