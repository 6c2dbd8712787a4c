// Package publisher writes audit events to the audit store and fans them out
// to optional sinks.
package publisher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/juju/clock"

	audit "hostelgate/pkg/platform/audit"
)

// Publisher captures structured audit events. It is append-only: the store
// write is synchronous and its error is returned, sink delivery is best effort.
type Publisher struct {
	store  audit.Store
	sinks  []audit.Sink
	clock  clock.Clock
	logger *slog.Logger
}

type Option func(*Publisher)

func WithSink(sink audit.Sink) Option {
	return func(p *Publisher) {
		if sink != nil {
			p.sinks = append(p.sinks, sink)
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(p *Publisher) {
		p.clock = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func New(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, clock: clock.WallClock}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit stamps, stores and forwards event.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Action == "" {
		return fmt.Errorf("audit event requires Action")
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.clock.Now()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}
	if err := p.store.Append(ctx, event); err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	for _, sink := range p.sinks {
		if err := sink.Publish(ctx, event); err != nil && p.logger != nil {
			p.logger.WarnContext(ctx, "audit sink publish failed",
				"action", event.Action,
				"error", err,
			)
		}
	}
	return nil
}

// List returns the stored events about subject.
func (p *Publisher) List(ctx context.Context, subject string) ([]audit.Event, error) {
	return p.store.ListBySubject(ctx, subject)
}

// Recent returns up to limit stored events, most recent first.
func (p *Publisher) Recent(ctx context.Context, limit int) ([]audit.Event, error) {
	return p.store.ListRecent(ctx, limit)
}
