package events

import (
	"context"
	"log/slog"
)

// Publisher delivers notifications to external subscribers. Implementations
// must be safe for concurrent use.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// Store persists emitted notifications as an append-only trail.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}

// StorePublisher writes events straight to a store. It is the dev default and
// the inspection point for tests.
type StorePublisher struct {
	store Store
}

func NewStorePublisher(store Store) *StorePublisher {
	return &StorePublisher{store: store}
}

func (p *StorePublisher) Emit(ctx context.Context, event Event) error {
	return p.store.Append(ctx, event)
}

// NopPublisher drops events. Used where a service is constructed without a
// notification sink.
type NopPublisher struct{}

func (NopPublisher) Emit(context.Context, Event) error { return nil }

// LoggingPublisher wraps another publisher and logs delivery failures instead
// of propagating them: notifications never fail a committed operation.
type LoggingPublisher struct {
	next   Publisher
	logger *slog.Logger
}

func NewLoggingPublisher(next Publisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

func (p *LoggingPublisher) Emit(ctx context.Context, event Event) error {
	if err := p.next.Emit(ctx, event); err != nil {
		p.logger.ErrorContext(ctx, "notification delivery failed",
			"kind", event.Kind,
			"event_id", event.ID,
			"error", err,
		)
	}
	return nil
}
