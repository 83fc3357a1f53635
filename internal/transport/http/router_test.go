package httptransport_test

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundcore/internal/amm"
	ammmetrics "fundcore/internal/amm/metrics"
	ammservice "fundcore/internal/amm/service"
	ammstore "fundcore/internal/amm/store"
	"fundcore/internal/compliance"
	compliancemetrics "fundcore/internal/compliance/metrics"
	complianceservice "fundcore/internal/compliance/service"
	compliancestore "fundcore/internal/compliance/store"
	"fundcore/internal/fund"
	fundmetrics "fundcore/internal/fund/metrics"
	fundmodels "fundcore/internal/fund/models"
	fundservice "fundcore/internal/fund/service"
	fundstore "fundcore/internal/fund/store"
	"fundcore/internal/platform/metrics"
	"fundcore/internal/platform/middleware"
	httptransport "fundcore/internal/transport/http"
	"fundcore/pkg/testutil"
)

const signingKey = "router-test-key"

// newServer assembles the full HTTP surface on memory stores, the same wiring
// the binary does minus external infrastructure.
func newServer(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	verifier := compliance.NewJWTVerifier(signingKey)
	complianceSvc := compliance.NewService(compliancestore.NewInMemory(), verifier)
	fundSvc := fund.NewService(fundstore.NewInMemory())
	ammSvc := amm.NewService(ammstore.NewInMemory(), fundSvc, complianceSvc)

	router := httptransport.NewRouter(logger, nil,
		fund.NewHandler(fundSvc, logger),
		compliance.NewHandler(complianceSvc, logger),
		amm.NewHandler(ammSvc, logger),
	)
	return router
}

func TestHealthEndpoint(t *testing.T) {
	router := newServer(t)

	req := testutil.NewRequest(t, http.MethodGet, "/healthz")
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "status", "ok")
}

// Walks the whole investor journey over HTTP: register a fund, verify
// compliance, open a pool, provision capacity, then trade.
func TestInvestorJourney(t *testing.T) {
	router := newServer(t)
	verifier := compliance.NewJWTVerifier(signingKey)

	// Register a fund.
	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/funds", map[string]any{
		"manager":             "mgr-1",
		"name":                "Global Macro",
		"target_size":         10_000_000,
		"min_investment":      1_000,
		"management_fee_bps":  200,
		"performance_fee_bps": 2000,
	}))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	created := testutil.UnmarshalResponse[fundmodels.Fund](t, rr)
	fundID := created.ID.String()

	// Verify the investor.
	proof, err := verifier.SignProof("inv-1", "accredited", time.Hour)
	require.NoError(t, err)
	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/compliance/submit", map[string]any{
		"investor": "inv-1",
		"proof":    string(proof),
	}))
	testutil.AssertStatus(t, rr, http.StatusOK)

	// Open the pool at price 100 and provision a million of capacity.
	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/pools", map[string]any{
		"fund_id":           fundID,
		"initial_price":     100,
		"reserve_ratio_bps": 2000,
	}))
	testutil.AssertStatus(t, rr, http.StatusCreated)

	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/pools/"+fundID+"/liquidity", map[string]any{
		"amount": 1_000_000,
	}))
	testutil.AssertStatus(t, rr, http.StatusOK)

	// Buy 10 shares: unit price stays 100 on a small order, price drifts to 101.
	req := testutil.NewJSONRequest(t, http.MethodPost, "/pools/"+fundID+"/buy", map[string]any{
		"share_amount": 10,
	})
	req.Header.Set(middleware.InvestorHeader, "inv-1")
	rr = testutil.DoRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "balance", float64(10))

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/pools/"+fundID))
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "share_price", float64(101))
	testutil.AssertJSONContains(t, rr, "total_liquidity", float64(1_000_000))

	// Balance is visible without authentication.
	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/pools/"+fundID+"/balances/inv-1"))
	testutil.AssertJSONContains(t, rr, "shares", float64(10))

	// An unverified investor cannot trade.
	req = testutil.NewJSONRequest(t, http.MethodPost, "/pools/"+fundID+"/buy", map[string]any{
		"share_amount": 10,
	})
	req.Header.Set(middleware.InvestorHeader, "inv-2")
	rr = testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusForbidden, "unauthorized")

	// Selling more than held is rejected and leaves the balance alone.
	req = testutil.NewJSONRequest(t, http.MethodPost, "/pools/"+fundID+"/sell", map[string]any{
		"share_amount": 50,
	})
	req.Header.Set(middleware.InvestorHeader, "inv-1")
	rr = testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusConflict, "conflict")

	// Selling the full holding round-trips the balance but not the price.
	req = testutil.NewJSONRequest(t, http.MethodPost, "/pools/"+fundID+"/sell", map[string]any{
		"share_amount": 10,
	})
	req.Header.Set(middleware.InvestorHeader, "inv-1")
	rr = testutil.DoRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "balance", float64(0))

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/pools/"+fundID))
	testutil.AssertJSONContains(t, rr, "share_price", float64(99))
}

// Module metrics register against the default prometheus registry, so each
// New() may run only once per process. This test owns that wiring and checks
// the counters survive the full assembly and show up on the scrape endpoint.
func TestMetricsScrape(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	verifier := compliance.NewJWTVerifier(signingKey)
	complianceSvc := compliance.NewService(compliancestore.NewInMemory(), verifier,
		complianceservice.WithMetrics(compliancemetrics.New()),
	)
	fundSvc := fund.NewService(fundstore.NewInMemory(),
		fundservice.WithMetrics(fundmetrics.New()),
	)
	ammSvc := amm.NewService(ammstore.NewInMemory(), fundSvc, complianceSvc,
		ammservice.WithMetrics(ammmetrics.New()),
	)

	router := httptransport.NewRouter(logger, metrics.New(),
		fund.NewHandler(fundSvc, logger),
		compliance.NewHandler(complianceSvc, logger),
		amm.NewHandler(ammSvc, logger),
	)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/funds", map[string]any{
		"manager":             "mgr-1",
		"name":                "Metrics Fund",
		"target_size":         1_000_000,
		"min_investment":      1_000,
		"management_fee_bps":  100,
		"performance_fee_bps": 1000,
	}))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	created := testutil.UnmarshalResponse[fundmodels.Fund](t, rr)

	proof, err := verifier.SignProof("inv-1", "accredited", time.Hour)
	require.NoError(t, err)
	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/compliance/submit", map[string]any{
		"investor": "inv-1",
		"proof":    string(proof),
	}))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/pools", map[string]any{
		"fund_id":           created.ID.String(),
		"initial_price":     100,
		"reserve_ratio_bps": 2000,
	}))
	testutil.AssertStatus(t, rr, http.StatusCreated)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "fundcore_funds_created_total 1")
	assert.Contains(t, body, `compliance_submissions_total{outcome="verified"} 1`)
	assert.Contains(t, body, "amm_pools_created_total 1")
	assert.Contains(t, body, "fundcore_http_requests_total")
}

func TestUnknownRoute(t *testing.T) {
	router := newServer(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/nope"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
