package models

import (
	"strings"
	"time"

	dErrors "hostelgate/pkg/domain-errors"
)

// Action is the direction of a recorded movement.
type Action string

const (
	ActionEntry Action = "ENTRY"
	ActionExit  Action = "EXIT"
)

// IsValid reports whether a is ENTRY or EXIT.
func (a Action) IsValid() bool {
	return a == ActionEntry || a == ActionExit
}

// TargetStatus maps an action onto the status it leaves the resident in.
func (a Action) TargetStatus() Status {
	if a == ActionEntry {
		return StatusInside
	}
	return StatusOutside
}

// ParseAction accepts an action name in any case.
func ParseAction(raw string) (Action, error) {
	a := Action(strings.ToUpper(strings.TrimSpace(raw)))
	if !a.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "invalid action: "+raw)
	}
	return a, nil
}

// MovementLogEntry is an immutable snapshot of one ENTRY or EXIT event.
// StudentName is copied at event time. Destination is nil when absent, which
// is distinct from an empty string.
type MovementLogEntry struct {
	ID          string    `json:"id"                    yaml:"id"`
	StudentID   string    `json:"student_id"            yaml:"studentId"`
	StudentName string    `json:"student_name"          yaml:"studentName"`
	Timestamp   time.Time `json:"timestamp"             yaml:"timestamp"`
	Action      Action    `json:"action"                yaml:"action"`
	Destination *string   `json:"destination,omitempty" yaml:"destination,omitempty"`
}

// NewMovementLogEntry snapshots resident at ts. The destination is kept only
// for EXIT and only when non-empty.
func NewMovementLogEntry(id string, resident Resident, action Action, destination *string, ts time.Time) MovementLogEntry {
	entry := MovementLogEntry{
		ID:          id,
		StudentID:   resident.ID,
		StudentName: resident.Name,
		Timestamp:   ts,
		Action:      action,
	}
	if action == ActionExit && destination != nil && *destination != "" {
		d := *destination
		entry.Destination = &d
	}
	return entry
}

// HasDestination reports whether a destination was recorded.
func (e MovementLogEntry) HasDestination() bool {
	return e.Destination != nil
}

// DestinationOrEmpty returns the destination or "" when absent.
func (e MovementLogEntry) DestinationOrEmpty() string {
	if e.Destination == nil {
		return ""
	}
	return *e.Destination
}

// OnDay reports whether the entry happened on the calendar date of day,
// evaluated in day's location.
func (e MovementLogEntry) OnDay(day time.Time) bool {
	ts := e.Timestamp.In(day.Location())
	y1, m1, d1 := ts.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Clone returns a copy that shares no memory with e.
func (e MovementLogEntry) Clone() MovementLogEntry {
	if e.Destination != nil {
		d := *e.Destination
		e.Destination = &d
	}
	return e
}
