package models

import (
	"time"

	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
)

// Status is the stored compliance state of an investor.
type Status string

const (
	StatusUnknown  Status = "unknown"
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusExpired  Status = "expired"
	StatusRejected Status = "rejected"
)

// Classification buckets an investor for suitability rules.
type Classification string

const (
	ClassificationRetail             Classification = "retail"
	ClassificationAccredited         Classification = "accredited"
	ClassificationQualifiedPurchaser Classification = "qualified_purchaser"
	ClassificationInstitutional      Classification = "institutional"
)

var validClassifications = map[Classification]bool{
	ClassificationRetail:             true,
	ClassificationAccredited:         true,
	ClassificationQualifiedPurchaser: true,
	ClassificationInstitutional:      true,
}

// ParseClassification validates an externally supplied classification.
func ParseClassification(s string) (Classification, error) {
	c := Classification(s)
	if !validClassifications[c] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown investor classification %q", s)
	}
	return c, nil
}

// ValidityWindow is how long a verified submission stays valid.
const ValidityWindow = 365 * 24 * time.Hour

// Record is an investor's compliance state.
//
// Invariant: a record stored as Verified whose expiry has passed must be read
// as Expired by every caller. The correction happens at read time through
// EffectiveStatus; storage is only rewritten by the next submission.
type Record struct {
	Investor       id.InvestorID  `json:"investor"`
	Status         Status         `json:"status"`
	Classification Classification `json:"classification"`
	ExpiresAt      time.Time      `json:"expires_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewVerified builds the record a successful submission writes.
func NewVerified(investor id.InvestorID, classification Classification, now time.Time) Record {
	return Record{
		Investor:       investor,
		Status:         StatusVerified,
		Classification: classification,
		ExpiresAt:      now.Add(ValidityWindow),
		UpdatedAt:      now,
	}
}

// Zero is the record read for an investor who never submitted.
func Zero(investor id.InvestorID) Record {
	return Record{
		Investor:       investor,
		Status:         StatusUnknown,
		Classification: ClassificationRetail,
	}
}

// EffectiveStatus computes the status as of now, applying the read-time
// expiry correction.
func (r Record) EffectiveStatus(now time.Time) Status {
	if r.Status == StatusVerified && now.After(r.ExpiresAt) {
		return StatusExpired
	}
	return r.Status
}

// Eligibility reasons surfaced to trade gating.
const (
	ReasonNotVerified = "Compliance not verified"
	ReasonExpired     = "Compliance expired"
)

// Eligible reports whether this record permits capital movement as of now,
// with the blocking reason when it does not.
func (r Record) Eligible(now time.Time) (bool, string) {
	switch r.EffectiveStatus(now) {
	case StatusVerified:
		return true, ""
	case StatusExpired:
		return false, ReasonExpired
	default:
		return false, ReasonNotVerified
	}
}
