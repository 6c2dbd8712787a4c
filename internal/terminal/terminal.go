// Package terminal drives the guard's verification terminal as an explicit
// state machine:
//
//	idle -> awaiting_verification -> awaiting_destination -> showing_result
//	                              \-> showing_result (ENTRY)
//	                              \-> error (unknown id)
//
// showing_result and error fall back to idle once the display duration has
// passed. Reset returns to idle from any state.
package terminal

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/juju/clock"

	"hostelgate/internal/gate/models"
	"hostelgate/internal/verification"
	dErrors "hostelgate/pkg/domain-errors"
)

type State string

const (
	StateIdle                 State = "idle"
	StateAwaitingVerification State = "awaiting_verification"
	StateAwaitingDestination  State = "awaiting_destination"
	StateShowingResult        State = "showing_result"
	StateError                State = "error"
)

const (
	msgInvalidID      = "Invalid Student ID."
	msgEntryFailed    = "Could not process the request."
	msgExitFailed     = "Could not process the exit log."
	msgCheckedIn      = "Checked In Successfully"
	msgCheckedOut     = "Checked Out Successfully"
	defaultResultTime = 5 * time.Second
)

// GateService is the subset of the gate service the terminal drives.
type GateService interface {
	FindResident(ctx context.Context, id string) (*models.Resident, error)
	LogMovement(ctx context.Context, residentID string, action models.Action, destination *string) (*models.Resident, error)
}

// Snapshot is what the terminal screen shows.
type Snapshot struct {
	State     State            `json:"state"`
	Resident  *models.Resident `json:"resident,omitempty"`
	Action    models.Action    `json:"action,omitempty"`
	Message   string           `json:"message,omitempty"`
	ExpiresAt *time.Time       `json:"expires_at,omitempty"`
}

type Terminal struct {
	mu sync.Mutex

	gate            GateService
	verifier        verification.Verifier
	clock           clock.Clock
	processingDelay time.Duration
	resultDisplay   time.Duration
	logger          *slog.Logger

	state     State
	resident  *models.Resident
	action    models.Action
	message   string
	expiresAt time.Time
	// scan changes whenever a verification starts or the screen is cleared.
	// A verification whose scan no longer matches was aborted.
	scan uint64
}

type Option func(*Terminal)

func WithClock(c clock.Clock) Option {
	return func(t *Terminal) {
		t.clock = c
	}
}

// WithProcessingDelay sets the pause between a successful scan and the
// roster lookup.
func WithProcessingDelay(d time.Duration) Option {
	return func(t *Terminal) {
		t.processingDelay = d
	}
}

// WithResultDisplay sets how long results and errors stay on screen.
func WithResultDisplay(d time.Duration) Option {
	return func(t *Terminal) {
		t.resultDisplay = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Terminal) {
		t.logger = logger
	}
}

func New(gate GateService, verifier verification.Verifier, opts ...Option) *Terminal {
	t := &Terminal{
		gate:          gate,
		verifier:      verifier,
		clock:         clock.WallClock,
		resultDisplay: defaultResultTime,
		logger:        slog.Default(),
		state:         StateIdle,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Snapshot returns the current screen.
func (t *Terminal) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.expireLocked()
	return t.snapshotLocked()
}

// Verify scans a resident and decides the direction from their current
// status: OUTSIDE residents are checked in immediately, INSIDE residents
// move on to destination selection. The verifier and processing delays run
// without holding the terminal lock, so Reset can abort them.
func (t *Terminal) Verify(ctx context.Context, method verification.Method, residentID string) (Snapshot, error) {
	t.mu.Lock()
	t.expireLocked()
	if t.state != StateIdle {
		state := t.state
		t.mu.Unlock()
		return Snapshot{}, dErrors.New(dErrors.CodeInvalidState, "terminal is busy: "+string(state))
	}
	t.clearLocked()
	t.state = StateAwaitingVerification
	scan := t.scan
	t.mu.Unlock()

	id, err := t.verifier.Verify(ctx, method, residentID)
	if err == nil {
		err = verification.Wait(ctx, t.clock, t.processingDelay)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.scan != scan {
		return Snapshot{}, dErrors.New(dErrors.CodeInvalidState, "verification was cancelled")
	}
	if err != nil {
		t.clearLocked()
		return Snapshot{}, err
	}

	resident, err := t.gate.FindResident(ctx, id)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeUnknownResident) {
			t.logger.ErrorContext(ctx, "terminal lookup failed", "resident_id", id, "error", err)
		}
		t.failLocked(msgInvalidID)
		return t.snapshotLocked(), nil
	}

	if resident.IsInside() {
		t.state = StateAwaitingDestination
		t.resident = resident
		return t.snapshotLocked(), nil
	}

	updated, err := t.gate.LogMovement(ctx, resident.ID, models.ActionEntry, nil)
	if err != nil {
		t.logger.ErrorContext(ctx, "terminal entry failed", "resident_id", resident.ID, "error", err)
		t.failLocked(msgEntryFailed)
		return t.snapshotLocked(), nil
	}
	t.showLocked(updated, models.ActionEntry, msgCheckedIn)
	return t.snapshotLocked(), nil
}

// ConfirmDestination records the EXIT for the resident awaiting a
// destination.
func (t *Terminal) ConfirmDestination(ctx context.Context, destination string) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.expireLocked()
	if t.state != StateAwaitingDestination {
		return Snapshot{}, dErrors.New(dErrors.CodeInvalidState, "no resident is awaiting a destination")
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return Snapshot{}, dErrors.New(dErrors.CodeMissingField, "destination is required")
	}

	updated, err := t.gate.LogMovement(ctx, t.resident.ID, models.ActionExit, &destination)
	if err != nil {
		t.logger.ErrorContext(ctx, "terminal exit failed", "resident_id", t.resident.ID, "error", err)
		t.failLocked(msgExitFailed)
		return t.snapshotLocked(), nil
	}
	t.showLocked(updated, models.ActionExit, msgCheckedOut)
	return t.snapshotLocked(), nil
}

// Reset returns the terminal to idle.
func (t *Terminal) Reset() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clearLocked()
	return t.snapshotLocked()
}

func (t *Terminal) showLocked(resident *models.Resident, action models.Action, msg string) {
	t.state = StateShowingResult
	t.resident = resident
	t.action = action
	t.message = msg
	t.expiresAt = t.clock.Now().Add(t.resultDisplay)
}

func (t *Terminal) failLocked(msg string) {
	t.state = StateError
	t.resident = nil
	t.action = ""
	t.message = msg
	t.expiresAt = t.clock.Now().Add(t.resultDisplay)
}

func (t *Terminal) clearLocked() {
	t.state = StateIdle
	t.resident = nil
	t.action = ""
	t.message = ""
	t.expiresAt = time.Time{}
	t.scan++
}

func (t *Terminal) expireLocked() {
	if t.state != StateShowingResult && t.state != StateError {
		return
	}
	if !t.clock.Now().Before(t.expiresAt) {
		t.clearLocked()
	}
}

func (t *Terminal) snapshotLocked() Snapshot {
	s := Snapshot{State: t.state, Action: t.action, Message: t.message}
	if t.resident != nil {
		r := *t.resident
		s.Resident = &r
	}
	if !t.expiresAt.IsZero() {
		e := t.expiresAt
		s.ExpiresAt = &e
	}
	return s
}
