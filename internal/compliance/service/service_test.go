package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundcore/internal/compliance/models"
	"fundcore/internal/compliance/service"
	"fundcore/internal/compliance/store"
	"fundcore/internal/events"
	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
	"fundcore/pkg/testutil"
)

const signingKey = "unit-test-signing-key"

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newGate(t *testing.T, opts ...service.Option) (*service.Service, *service.JWTVerifier, *events.InMemoryStore) {
	t.Helper()
	verifier := service.NewJWTVerifier(signingKey)
	sink := events.NewInMemoryStore()
	opts = append([]service.Option{service.WithPublisher(events.NewStorePublisher(sink))}, opts...)
	return service.New(store.NewInMemory(), verifier, opts...), verifier, sink
}

func submit(t *testing.T, ctx context.Context, gate *service.Service, verifier *service.JWTVerifier, investor id.InvestorID, classification models.Classification) models.Record {
	t.Helper()
	proof, err := verifier.SignProof(investor, classification, time.Hour)
	require.NoError(t, err)
	record, err := gate.SubmitCompliance(ctx, investor, proof)
	require.NoError(t, err)
	return record
}

func TestSubmitCompliance(t *testing.T) {
	ctx := testutil.Ctx(baseTime)
	investor := id.InvestorID("inv-1")

	t.Run("valid proof verifies for a year", func(t *testing.T) {
		gate, verifier, sink := newGate(t)

		record := submit(t, ctx, gate, verifier, investor, models.ClassificationAccredited)
		assert.Equal(t, models.StatusVerified, record.Status)
		assert.Equal(t, models.ClassificationAccredited, record.Classification)
		assert.Equal(t, baseTime.Add(models.ValidityWindow), record.ExpiresAt)

		published, err := sink.ListKind(ctx, events.KindComplianceUpdated)
		require.NoError(t, err)
		require.Len(t, published, 1)
		payload, ok := published[0].Payload.(events.ComplianceUpdated)
		require.True(t, ok)
		assert.Equal(t, investor, payload.Investor)
	})

	t.Run("bad proof writes nothing", func(t *testing.T) {
		gate, _, sink := newGate(t)

		_, err := gate.SubmitCompliance(ctx, investor, []byte("forged"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

		status, _, err := gate.VerifyCompliance(ctx, investor, "")
		require.NoError(t, err)
		assert.Equal(t, models.StatusUnknown, status)

		published, err := sink.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, published)
	})

	t.Run("resubmission extends expiry", func(t *testing.T) {
		gate, verifier, _ := newGate(t)

		submit(t, ctx, gate, verifier, investor, models.ClassificationRetail)

		later := testutil.Ctx(baseTime.Add(200 * 24 * time.Hour))
		record := submit(t, later, gate, verifier, investor, models.ClassificationRetail)
		assert.Equal(t, baseTime.Add(200*24*time.Hour).Add(models.ValidityWindow), record.ExpiresAt)
	})
}

func TestVerifyCompliance(t *testing.T) {
	ctx := testutil.Ctx(baseTime)
	investor := id.InvestorID("inv-1")

	t.Run("unknown investor reads as the zero record", func(t *testing.T) {
		gate, _, _ := newGate(t)

		status, classification, err := gate.VerifyCompliance(ctx, id.InvestorID("stranger"), "US")
		require.NoError(t, err)
		assert.Equal(t, models.StatusUnknown, status)
		assert.Equal(t, models.ClassificationRetail, classification)
	})

	t.Run("verification expires at read time", func(t *testing.T) {
		gate, verifier, _ := newGate(t)
		submit(t, ctx, gate, verifier, investor, models.ClassificationInstitutional)

		status, _, err := gate.VerifyCompliance(ctx, investor, "US")
		require.NoError(t, err)
		assert.Equal(t, models.StatusVerified, status)

		afterExpiry := testutil.Ctx(baseTime.Add(models.ValidityWindow).Add(time.Second))
		status, classification, err := gate.VerifyCompliance(afterExpiry, investor, "US")
		require.NoError(t, err)
		assert.Equal(t, models.StatusExpired, status)
		assert.Equal(t, models.ClassificationInstitutional, classification)
	})
}

func TestCheckEligibility(t *testing.T) {
	ctx := testutil.Ctx(baseTime)
	investor := id.InvestorID("inv-1")
	fundID := id.DeriveFundID(id.ManagerID("mgr-1"), "Growth Fund", baseTime)

	t.Run("verified investor is eligible", func(t *testing.T) {
		gate, verifier, _ := newGate(t)
		submit(t, ctx, gate, verifier, investor, models.ClassificationRetail)

		eligible, reason, err := gate.CheckEligibility(ctx, investor, fundID)
		require.NoError(t, err)
		assert.True(t, eligible)
		assert.Empty(t, reason)
	})

	t.Run("unknown investor is blocked as not verified", func(t *testing.T) {
		gate, _, _ := newGate(t)

		eligible, reason, err := gate.CheckEligibility(ctx, id.InvestorID("stranger"), fundID)
		require.NoError(t, err)
		assert.False(t, eligible)
		assert.Equal(t, models.ReasonNotVerified, reason)
	})

	t.Run("expired verification is blocked with the expiry reason", func(t *testing.T) {
		gate, verifier, _ := newGate(t)
		submit(t, ctx, gate, verifier, investor, models.ClassificationRetail)

		afterExpiry := testutil.Ctx(baseTime.Add(models.ValidityWindow).Add(time.Minute))
		eligible, reason, err := gate.CheckEligibility(afterExpiry, investor, fundID)
		require.NoError(t, err)
		assert.False(t, eligible)
		assert.Equal(t, models.ReasonExpired, reason)
	})

	t.Run("per-fund rules run after the global check", func(t *testing.T) {
		accreditedOnly := func(record models.Record, _ id.FundID) (bool, string) {
			if record.Classification == models.ClassificationRetail {
				return false, "fund restricted to accredited investors"
			}
			return true, ""
		}
		gate, verifier, _ := newGate(t, service.WithRule(accreditedOnly))
		submit(t, ctx, gate, verifier, investor, models.ClassificationRetail)

		eligible, reason, err := gate.CheckEligibility(ctx, investor, fundID)
		require.NoError(t, err)
		assert.False(t, eligible)
		assert.Equal(t, "fund restricted to accredited investors", reason)

		accredited := id.InvestorID("inv-2")
		submit(t, ctx, gate, verifier, accredited, models.ClassificationAccredited)
		eligible, reason, err = gate.CheckEligibility(ctx, accredited, fundID)
		require.NoError(t, err)
		assert.True(t, eligible)
		assert.Empty(t, reason)
	})

	t.Run("rules are skipped for blocked investors", func(t *testing.T) {
		called := false
		gate, _, _ := newGate(t, service.WithRule(func(models.Record, id.FundID) (bool, string) {
			called = true
			return true, ""
		}))

		_, reason, err := gate.CheckEligibility(ctx, id.InvestorID("stranger"), fundID)
		require.NoError(t, err)
		assert.Equal(t, models.ReasonNotVerified, reason)
		assert.False(t, called)
	})
}

func TestGetComplianceExpiry(t *testing.T) {
	ctx := testutil.Ctx(baseTime)
	investor := id.InvestorID("inv-1")

	t.Run("zero time before any submission", func(t *testing.T) {
		gate, _, _ := newGate(t)

		expiry, err := gate.GetComplianceExpiry(ctx, investor)
		require.NoError(t, err)
		assert.True(t, expiry.IsZero())
	})

	t.Run("expiry tracks the submission time", func(t *testing.T) {
		gate, verifier, _ := newGate(t)
		submit(t, ctx, gate, verifier, investor, models.ClassificationRetail)

		expiry, err := gate.GetComplianceExpiry(ctx, investor)
		require.NoError(t, err)
		assert.Equal(t, baseTime.Add(models.ValidityWindow), expiry)
	})
}
