package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose so sinks
// can route or retain them differently.
type EventCategory string

const (
	// CategoryCompliance covers roster changes that must never be lost.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers authentication outcomes.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine gate activity.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	// Actor is the username of the logged-in operator, if any.
	Actor string `json:"actor,omitempty"`
	// Subject is the resident id or username the event is about.
	Subject   string `json:"subject"`
	Action    string `json:"action"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type AuditEvent string

const (
	// Session events
	EventLoginSucceeded AuditEvent = "login_succeeded"
	EventLoginFailed    AuditEvent = "login_failed"
	EventLoggedOut      AuditEvent = "logged_out"

	// Roster events
	EventResidentRegistered AuditEvent = "resident_registered"

	// Movement events
	EventMovementRecorded AuditEvent = "movement_recorded"
	EventEntryIgnored     AuditEvent = "entry_ignored"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventResidentRegistered: CategoryCompliance,

	EventLoginSucceeded: CategorySecurity,
	EventLoginFailed:    CategorySecurity,
	EventLoggedOut:      CategorySecurity,

	EventMovementRecorded: CategoryOperations,
	EventEntryIgnored:     CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events. Implementations must be append-only.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListAll(ctx context.Context) ([]Event, error)
	ListBySubject(ctx context.Context, subject string) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}

// Sink receives events after they are stored. Sink failures never fail the
// audited operation.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}
