// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets these values; services read them. Keeping the package free
// of net/http lets services and workers share the accessors without pulling in
// transport code.
//
// Usage in services (read values):
//
//	investor := requestcontext.InvestorID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithInvestorID(ctx, "inv-1")
package requestcontext

import (
	"context"
	"time"

	id "fundcore/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	investorIDKey  struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyInvestorID  = investorIDKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// InvestorID retrieves the calling investor identity from the context.
// Returns the zero value if not set.
func InvestorID(ctx context.Context) id.InvestorID {
	if inv, ok := ctx.Value(ContextKeyInvestorID).(id.InvestorID); ok {
		return inv
	}
	return ""
}

// WithInvestorID injects an investor identity into the context.
func WithInvestorID(ctx context.Context, investor id.InvestorID) context.Context {
	return context.WithValue(ctx, ContextKeyInvestorID, investor)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (workers, CLI, tests without a clock).
//
// All expiry and timestamp logic reads the clock through this accessor so
// read-time corrections (compliance expiry) are testable without sleeping.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
