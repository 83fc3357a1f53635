package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "fundcore/pkg/domain"
)

func TestParseClassification(t *testing.T) {
	for _, s := range []string{"retail", "accredited", "qualified_purchaser", "institutional"} {
		c, err := ParseClassification(s)
		require.NoError(t, err)
		assert.Equal(t, Classification(s), c)
	}

	_, err := ParseClassification("sovereign")
	assert.Error(t, err)
}

func TestEffectiveStatus_ExpiryCorrection(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := NewVerified(id.InvestorID("inv-1"), ClassificationAccredited, now)

	assert.Equal(t, StatusVerified, rec.EffectiveStatus(now))
	assert.Equal(t, StatusVerified, rec.EffectiveStatus(rec.ExpiresAt))
	assert.Equal(t, StatusExpired, rec.EffectiveStatus(rec.ExpiresAt.Add(time.Second)))

	// Stored status stays Verified; only the read changes.
	assert.Equal(t, StatusVerified, rec.Status)
}

func TestEligible(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("verified investor is eligible", func(t *testing.T) {
		rec := NewVerified(id.InvestorID("inv-1"), ClassificationRetail, now)
		ok, reason := rec.Eligible(now)
		assert.True(t, ok)
		assert.Empty(t, reason)
	})

	t.Run("expired verification blocks with expired reason", func(t *testing.T) {
		rec := NewVerified(id.InvestorID("inv-1"), ClassificationRetail, now)
		ok, reason := rec.Eligible(rec.ExpiresAt.Add(time.Hour))
		assert.False(t, ok)
		assert.Equal(t, ReasonExpired, reason)
	})

	t.Run("unknown investor blocks with not verified reason", func(t *testing.T) {
		rec := Zero(id.InvestorID("stranger"))
		ok, reason := rec.Eligible(now)
		assert.False(t, ok)
		assert.Equal(t, ReasonNotVerified, reason)
	})

	t.Run("rejected investor blocks with not verified reason", func(t *testing.T) {
		rec := Zero(id.InvestorID("inv-1"))
		rec.Status = StatusRejected
		ok, reason := rec.Eligible(now)
		assert.False(t, ok)
		assert.Equal(t, ReasonNotVerified, reason)
	})
}
