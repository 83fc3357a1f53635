package handler_test

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fundcore/internal/compliance/handler"
	"fundcore/internal/compliance/handler/mocks"
	"fundcore/internal/compliance/models"
	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
	"fundcore/pkg/testutil"
)

func newRouter(service handler.Service) http.Handler {
	h := handler.New(service, slog.New(slog.DiscardHandler))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

var (
	baseTime   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sampleFund = id.DeriveFundID(id.ManagerID("mgr-1"), "Alpha", baseTime)
)

func TestSubmitEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	router := newRouter(service)

	t.Run("submits a proof", func(t *testing.T) {
		record := models.NewVerified(id.InvestorID("inv-1"), models.ClassificationAccredited, baseTime)
		service.EXPECT().
			SubmitCompliance(gomock.Any(), id.InvestorID("inv-1"), []byte("signed-proof")).
			Return(record, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/compliance/submit", map[string]any{
			"investor": "inv-1",
			"proof":    "signed-proof",
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[models.Record](t, rr)
		assert.Equal(t, models.StatusVerified, got.Status)
		assert.Equal(t, models.ClassificationAccredited, got.Classification)
	})

	t.Run("rejects missing proof", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/compliance/submit", map[string]any{
			"investor": "inv-1",
		})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_input")
	})

	t.Run("rejects missing investor", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/compliance/submit", map[string]any{
			"proof": "signed-proof",
		})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_input")
	})

	t.Run("surfaces verification failure", func(t *testing.T) {
		service.EXPECT().
			SubmitCompliance(gomock.Any(), id.InvestorID("inv-1"), []byte("forged")).
			Return(models.Record{}, dErrors.New(dErrors.CodeInvalidInput, "proof verification failed"))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/compliance/submit", map[string]any{
			"investor": "inv-1",
			"proof":    "forged",
		})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_input")
	})
}

func TestVerifyEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	router := newRouter(service)

	t.Run("returns effective status", func(t *testing.T) {
		service.EXPECT().
			VerifyCompliance(gomock.Any(), id.InvestorID("inv-1"), "US").
			Return(models.StatusVerified, models.ClassificationInstitutional, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/compliance/inv-1?jurisdiction=US")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertJSONContains(t, rr, "status", "verified")
		testutil.AssertJSONContains(t, rr, "classification", "institutional")
	})

	t.Run("unknown investor reads as unknown", func(t *testing.T) {
		service.EXPECT().
			VerifyCompliance(gomock.Any(), id.InvestorID("stranger"), "").
			Return(models.StatusUnknown, models.ClassificationRetail, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/compliance/stranger")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertJSONContains(t, rr, "status", "unknown")
	})
}

func TestEligibilityEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	router := newRouter(service)

	t.Run("eligible investor", func(t *testing.T) {
		service.EXPECT().
			CheckEligibility(gomock.Any(), id.InvestorID("inv-1"), sampleFund).
			Return(true, "", nil)

		req := testutil.NewRequest(t, http.MethodGet, "/compliance/inv-1/eligibility?fund="+sampleFund.String())
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertJSONContains(t, rr, "eligible", true)
		testutil.AssertJSONContains(t, rr, "reason", "")
	})

	t.Run("blocked investor carries the reason", func(t *testing.T) {
		service.EXPECT().
			CheckEligibility(gomock.Any(), id.InvestorID("inv-1"), sampleFund).
			Return(false, models.ReasonExpired, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/compliance/inv-1/eligibility?fund="+sampleFund.String())
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertJSONContains(t, rr, "eligible", false)
		testutil.AssertJSONContains(t, rr, "reason", models.ReasonExpired)
	})

	t.Run("requires a fund parameter", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/compliance/inv-1/eligibility")
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_input")
	})
}

func TestExpiryEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	router := newRouter(service)

	t.Run("returns the expiry timestamp", func(t *testing.T) {
		service.EXPECT().
			GetComplianceExpiry(gomock.Any(), id.InvestorID("inv-1")).
			Return(baseTime.Add(models.ValidityWindow), nil)

		req := testutil.NewRequest(t, http.MethodGet, "/compliance/inv-1/expiry")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertJSONContains(t, rr, "expires_at", baseTime.Add(models.ValidityWindow).Format(time.RFC3339))
	})

	t.Run("zero time for unsubmitted investor", func(t *testing.T) {
		service.EXPECT().
			GetComplianceExpiry(gomock.Any(), id.InvestorID("stranger")).
			Return(time.Time{}, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/compliance/stranger/expiry")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertJSONContains(t, rr, "expires_at", time.Time{}.Format(time.RFC3339))
	})
}
