package events

import (
	"context"
	"log/slog"
)

// Worker drains an inbox channel into a publisher, decoupling emission from
// delivery latency. Services write to the inbox through Dispatcher; the
// worker runs under the process run group.
type Worker struct {
	publisher Publisher
	inbox     <-chan Event
	logger    *slog.Logger
}

func NewWorker(publisher Publisher, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{publisher: publisher, inbox: inbox, logger: logger}
}

// Run delivers events until the context is canceled. Delivery failures are
// logged and skipped: the domain operation already committed.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.publisher.Emit(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "notification delivery failed",
					"kind", event.Kind,
					"event_id", event.ID,
					"error", err,
				)
			}
		}
	}
}

// Dispatcher is the Publisher services hold when delivery is asynchronous.
// Emit never blocks the trade path: if the inbox is full the event is dropped
// and logged.
type Dispatcher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

func NewDispatcher(inbox chan<- Event, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{inbox: inbox, logger: logger}
}

func (d *Dispatcher) Emit(ctx context.Context, event Event) error {
	select {
	case d.inbox <- event:
		return nil
	default:
		d.logger.WarnContext(ctx, "notification inbox full, dropping event",
			"kind", event.Kind,
			"event_id", event.ID,
		)
		return nil
	}
}
