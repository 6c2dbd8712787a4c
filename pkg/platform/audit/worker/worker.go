// Package worker decouples audit sinks from the request that emitted the
// event.
package worker

import (
	"context"
	"log/slog"

	audit "hostelgate/pkg/platform/audit"
)

// Worker is an audit.Sink that queues events and forwards them to next from
// its own goroutine. Events queued while the buffer is full are dropped.
type Worker struct {
	next   audit.Sink
	inbox  chan audit.Event
	logger *slog.Logger
}

func NewWorker(next audit.Sink, buffer int, logger *slog.Logger) *Worker {
	if buffer <= 0 {
		buffer = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{next: next, inbox: make(chan audit.Event, buffer), logger: logger}
}

// Publish queues event without blocking.
func (w *Worker) Publish(ctx context.Context, event audit.Event) error {
	select {
	case w.inbox <- event:
	default:
		w.logger.WarnContext(ctx, "audit worker buffer full, dropping event",
			"action", event.Action,
			"subject", event.Subject,
		)
	}
	return nil
}

// Run forwards queued events until ctx is done, then drains what is left
// using a context that is not cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain(context.WithoutCancel(ctx))
			return nil
		case event := <-w.inbox:
			w.forward(ctx, event)
		}
	}
}

func (w *Worker) drain(ctx context.Context) {
	for {
		select {
		case event := <-w.inbox:
			w.forward(ctx, event)
		default:
			return
		}
	}
}

func (w *Worker) forward(ctx context.Context, event audit.Event) {
	if err := w.next.Publish(ctx, event); err != nil {
		w.logger.WarnContext(ctx, "audit sink publish failed",
			"action", event.Action,
			"error", err,
		)
	}
}
