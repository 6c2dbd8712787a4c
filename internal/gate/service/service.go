package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/juju/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hostelgate/internal/gate/models"
	"hostelgate/internal/platform/metrics"
	dErrors "hostelgate/pkg/domain-errors"
	"hostelgate/pkg/platform/audit"
	"hostelgate/pkg/platform/sentinel"
	"hostelgate/pkg/requestcontext"
)

// RosterStore is the storage contract for residents and movement logs.
type RosterStore interface {
	NextResidentID(ctx context.Context) string
	NextLogID(ctx context.Context) string
	Insert(ctx context.Context, resident models.Resident) error
	FindByID(ctx context.Context, id string) (*models.Resident, error)
	CommitMovement(ctx context.Context, residentID string, status models.Status, entry models.MovementLogEntry) error
	ListResidents(ctx context.Context) ([]models.Resident, error)
	ListLogs(ctx context.Context) ([]models.MovementLogEntry, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service is the only writer of the roster and the movement log. Presentation
// code reads snapshots from it and calls its operations in response to
// operator actions.
type Service struct {
	store          RosterStore
	tx             RosterStoreTx
	clock          clock.Clock
	destinations   []string
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock sets the clock used to timestamp log entries.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithDestinations sets the destination list offered for EXIT. The list only
// shapes input; LogMovement accepts any destination.
func WithDestinations(destinations []string) Option {
	return func(s *Service) {
		s.destinations = slices.Clone(destinations)
	}
}

// WithTx replaces the default in-memory transaction boundary.
func WithTx(tx RosterStoreTx) Option {
	return func(s *Service) {
		s.tx = tx
	}
}

// New constructs a Service over store.
func New(store RosterStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		clock:  clock.WallClock,
		logger: slog.Default(),
		tracer: otel.Tracer("hostelgate/internal/gate/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = NewMemoryTx(store)
	}
	return s
}

// RegisterResident adds a resident with a fresh id and status INSIDE.
func (s *Service) RegisterResident(ctx context.Context, name, roomNumber, photoRef string) (*models.Resident, error) {
	ctx, span := s.tracer.Start(ctx, "gate.RegisterResident")
	defer span.End()

	var created *models.Resident
	err := s.tx.RunInTx(ctx, func(store RosterStore) error {
		resident, err := models.NewResident(store.NextResidentID(ctx), name, roomNumber, photoRef)
		if err != nil {
			return err
		}
		if err := store.Insert(ctx, *resident); err != nil {
			return s.storeFailure(ctx, err, "failed to register resident", "resident_id", resident.ID)
		}
		created = resident
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("resident_id", created.ID))
	s.logAudit(ctx, audit.EventResidentRegistered, created.ID, "",
		"resident_id", created.ID,
		"room_number", created.RoomNumber,
	)
	if s.metrics != nil {
		s.metrics.IncrementResidentsRegistered()
	}
	s.refreshOccupancy(ctx)
	return created, nil
}

// LogMovement records an ENTRY or EXIT for the resident with residentID
// (matched case-insensitively) and returns the resident's updated record.
//
// ENTRY for a resident already INSIDE returns the resident unchanged and
// writes no log entry. EXIT always writes an entry, even when the resident is
// already OUTSIDE. destination is recorded only for EXIT and only when
// non-empty.
func (s *Service) LogMovement(ctx context.Context, residentID string, action models.Action, destination *string) (*models.Resident, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "gate.LogMovement", trace.WithAttributes(
		attribute.String("resident_id", residentID),
		attribute.String("action", string(action)),
	))
	defer span.End()
	if s.metrics != nil {
		defer s.metrics.ObserveMovement(start)
	}

	if !action.IsValid() {
		err := dErrors.New(dErrors.CodeValidation, "invalid action: "+string(action))
		recordSpanError(span, err)
		return nil, err
	}

	var (
		result  *models.Resident
		entry   *models.MovementLogEntry
		ignored bool
	)
	err := s.tx.RunInTx(ctx, func(store RosterStore) error {
		resident, err := store.FindByID(ctx, residentID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeUnknownResident, "resident not found: "+strings.TrimSpace(residentID))
			}
			return s.storeFailure(ctx, err, "failed to load resident", "resident_id", residentID)
		}

		if action == models.ActionEntry && resident.IsInside() {
			result, ignored = resident, true
			return nil
		}

		target := action.TargetStatus()
		e := models.NewMovementLogEntry(store.NextLogID(ctx), *resident, action, destination, s.clock.Now())
		if err := store.CommitMovement(ctx, resident.ID, target, e); err != nil {
			return s.storeFailure(ctx, err, "failed to record movement",
				"resident_id", resident.ID,
				"log_id", e.ID,
			)
		}
		resident.Status = target
		result, entry = resident, &e
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	if ignored {
		span.SetAttributes(attribute.Bool("ignored", true))
		s.logAudit(ctx, audit.EventEntryIgnored, result.ID, "already inside",
			"resident_id", result.ID,
		)
		if s.metrics != nil {
			s.metrics.IncrementEntryIgnored()
		}
		return result, nil
	}

	attrs := []any{"resident_id", result.ID, "log_id", entry.ID, "action", string(entry.Action)}
	if entry.HasDestination() {
		attrs = append(attrs, "destination", *entry.Destination)
	}
	s.logAudit(ctx, audit.EventMovementRecorded, result.ID, string(entry.Action), attrs...)
	if s.metrics != nil {
		s.metrics.IncrementMovement(entry.Action)
	}
	s.refreshOccupancy(ctx)
	return result, nil
}

// FindResident returns a copy of the resident with id (case-insensitive).
func (s *Service) FindResident(ctx context.Context, id string) (*models.Resident, error) {
	resident, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnknownResident, "resident not found: "+strings.TrimSpace(id))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStoreFailure, "failed to load resident")
	}
	return resident, nil
}

// Roster returns the residents in registration order.
func (s *Service) Roster(ctx context.Context) ([]models.Resident, error) {
	residents, err := s.store.ListResidents(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStoreFailure, "failed to list residents")
	}
	return residents, nil
}

// Logs returns every movement log entry, newest first.
func (s *Service) Logs(ctx context.Context) ([]models.MovementLogEntry, error) {
	logs, err := s.store.ListLogs(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStoreFailure, "failed to list logs")
	}
	return logs, nil
}

// LogsOn returns the entries that fall on day's calendar date, evaluated in
// day's location, newest first.
func (s *Service) LogsOn(ctx context.Context, day time.Time) ([]models.MovementLogEntry, error) {
	logs, err := s.Logs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.MovementLogEntry, 0, len(logs))
	for _, e := range logs {
		if e.OnDay(day) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Occupancy counts residents inside and outside.
func (s *Service) Occupancy(ctx context.Context) (models.Occupancy, error) {
	residents, err := s.Roster(ctx)
	if err != nil {
		return models.Occupancy{}, err
	}
	return models.CountOccupancy(residents), nil
}

// Destinations returns the configured destination list.
func (s *Service) Destinations() []string {
	return slices.Clone(s.destinations)
}

// storeFailure converts an unexpected store error into CodeStoreFailure. A
// conflict here means id generation handed out a taken id, which is a bug.
func (s *Service) storeFailure(ctx context.Context, err error, msg string, attrs ...any) error {
	args := append([]any{"error", err}, attrs...)
	if errors.Is(err, sentinel.ErrConflict) {
		s.logger.ErrorContext(ctx, "invariant violation: generated id already in use", args...)
	} else {
		s.logger.ErrorContext(ctx, msg, args...)
	}
	return dErrors.Wrap(err, dErrors.CodeStoreFailure, msg)
}

func (s *Service) refreshOccupancy(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	if o, err := s.Occupancy(ctx); err == nil {
		s.metrics.SetOccupancy(o)
	}
}

// logAudit writes the structured log line and emits the audit event.
func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, subject, reason string, attrs ...any) {
	actor := requestcontext.Username(ctx)
	requestID := requestcontext.RequestID(ctx)
	args := slices.Concat(attrs, []any{"event", string(event), "log_type", "audit"})
	if actor != "" {
		args = append(args, "actor", actor)
	}
	if requestID != "" {
		args = append(args, "request_id", requestID)
	}
	s.logger.InfoContext(ctx, string(event), args...)

	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Category:  event.Category(),
		Actor:     actor,
		Subject:   subject,
		Action:    string(event),
		Reason:    reason,
		RequestID: requestID,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"event", string(event),
			"error", err,
		)
	}
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(dErrors.GetCode(err)))
}
