package testutil

import (
	"context"
	"net/http"
	"time"

	id "fundcore/pkg/domain"
	"fundcore/pkg/requestcontext"
)

// WithInvestor adds an investor identity to the request context, simulating
// what the identity middleware does for authenticated callers.
func WithInvestor(req *http.Request, investor string) *http.Request {
	if parsed, err := id.ParseInvestorID(investor); err == nil {
		ctx := requestcontext.WithInvestorID(req.Context(), parsed)
		return req.WithContext(ctx)
	}
	return req
}

// WithFixedTime pins the request-scoped clock, letting expiry assertions run
// without sleeping.
func WithFixedTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

// Ctx returns a context with a fixed clock for service-level tests.
func Ctx(t time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), t)
}

// WithContextValue adds an arbitrary key-value pair to the request context.
func WithContextValue(req *http.Request, key, value any) *http.Request {
	ctx := context.WithValue(req.Context(), key, value)
	return req.WithContext(ctx)
}
