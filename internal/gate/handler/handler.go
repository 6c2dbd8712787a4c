package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/juju/clock"

	authmodels "hostelgate/internal/auth/models"
	"hostelgate/internal/gate/export"
	"hostelgate/internal/gate/models"
	"hostelgate/internal/platform/middleware"
	"hostelgate/internal/terminal"
	"hostelgate/internal/verification"
	dErrors "hostelgate/pkg/domain-errors"
	"hostelgate/pkg/platform/httputil"
	"hostelgate/pkg/requestcontext"
)

// Service defines the gate operations exposed over HTTP.
type Service interface {
	RegisterResident(ctx context.Context, name, roomNumber, photoRef string) (*models.Resident, error)
	LogMovement(ctx context.Context, residentID string, action models.Action, destination *string) (*models.Resident, error)
	FindResident(ctx context.Context, id string) (*models.Resident, error)
	Roster(ctx context.Context) ([]models.Resident, error)
	Logs(ctx context.Context) ([]models.MovementLogEntry, error)
	LogsOn(ctx context.Context, day time.Time) ([]models.MovementLogEntry, error)
	Occupancy(ctx context.Context) (models.Occupancy, error)
	Destinations() []string
}

// Terminal is the guard verification terminal.
type Terminal interface {
	Snapshot() terminal.Snapshot
	Verify(ctx context.Context, method verification.Method, residentID string) (terminal.Snapshot, error)
	ConfirmDestination(ctx context.Context, destination string) (terminal.Snapshot, error)
	Reset() terminal.Snapshot
}

// Handler serves the roster, movement log and guard terminal. It expects
// RequireSession to have run; role checks are applied per route.
type Handler struct {
	service  Service
	terminal Terminal
	logger   *slog.Logger
	clock    clock.Clock
	location *time.Location
}

type Option func(*Handler)

func WithClock(c clock.Clock) Option {
	return func(h *Handler) {
		h.clock = c
	}
}

// WithLocation sets the time zone used for ?date= filters and CSV output.
func WithLocation(loc *time.Location) Option {
	return func(h *Handler) {
		h.location = loc
	}
}

func New(service Service, term Terminal, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		service:  service,
		terminal: term,
		logger:   logger,
		clock:    clock.WallClock,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the gate routes.
func (h *Handler) Register(r chi.Router) {
	admin := middleware.RequireRole(h.logger, authmodels.RoleAdmin)
	guard := middleware.RequireRole(h.logger, authmodels.RoleGuard)

	r.Get("/residents", h.HandleRoster)
	r.Get("/residents/{id}", h.HandleGetResident)
	r.Get("/occupancy", h.HandleOccupancy)
	r.Get("/destinations", h.HandleDestinations)

	r.With(admin).Post("/residents", h.HandleRegisterResident)
	r.With(admin).Get("/residents/{id}/qr", h.HandleResidentQR)
	r.With(admin).Get("/logs", h.HandleLogs)
	r.With(admin).Get("/logs/export", h.HandleExportLogs)

	r.With(guard).Post("/movements", h.HandleLogMovement)
	r.Route("/terminal", func(r chi.Router) {
		r.Use(guard)
		r.Get("/", h.HandleTerminalSnapshot)
		r.Post("/verify", h.HandleTerminalVerify)
		r.Post("/destination", h.HandleTerminalDestination)
		r.Post("/reset", h.HandleTerminalReset)
	})
}

func (h *Handler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	residents, err := h.service.Roster(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list residents",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RosterResponse{Residents: residents})
}

func (h *Handler) HandleGetResident(w http.ResponseWriter, r *http.Request) {
	resident, err := h.service.FindResident(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resident)
}

// HandleResidentQR serves the resident's scannable badge as a PNG download.
func (h *Handler) HandleResidentQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resident, err := h.service.FindResident(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	badge, err := export.QRBadge(resident.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render qr badge",
			"request_id", requestcontext.RequestID(ctx),
			"resident_id", resident.ID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render badge"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.QRFileName(resident.ID)+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(badge); err != nil {
		h.logger.ErrorContext(ctx, "failed to write qr badge",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

func (h *Handler) HandleOccupancy(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Occupancy(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) HandleDestinations(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, DestinationsResponse{Destinations: h.service.Destinations()})
}

func (h *Handler) HandleRegisterResident(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterResidentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	resident, err := h.service.RegisterResident(ctx, req.Name, req.RoomNumber, req.PhotoURL)
	if err != nil {
		h.logger.WarnContext(ctx, "resident registration failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, resident)
}

func (h *Handler) HandleLogMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[LogMovementRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	resident, err := h.service.LogMovement(ctx, req.StudentID, req.ParsedAction(), req.Destination)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeStoreFailure) {
			h.logger.ErrorContext(ctx, "movement failed",
				"request_id", requestID,
				"student_id", req.StudentID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resident)
}

func (h *Handler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := strings.TrimSpace(r.URL.Query().Get("date"))

	var (
		logs []models.MovementLogEntry
		err  error
	)
	if raw == "" {
		logs, err = h.service.Logs(ctx)
	} else {
		day, perr := h.parseDay(raw)
		if perr != nil {
			httputil.WriteError(w, perr)
			return
		}
		logs, err = h.service.LogsOn(ctx, day)
	}
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, LogsResponse{Logs: logs})
}

// HandleExportLogs streams the log sheet for ?date= (default today) as CSV.
func (h *Handler) HandleExportLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	day := h.clock.Now().In(h.location)
	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		parsed, err := h.parseDay(raw)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		day = parsed
	}

	logs, err := h.service.LogsOn(ctx, day)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(day)+`"`)
	w.WriteHeader(http.StatusOK)
	if err := export.WriteCSV(w, logs, h.location); err != nil {
		h.logger.ErrorContext(ctx, "failed to write csv export",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

func (h *Handler) HandleTerminalSnapshot(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.terminal.Snapshot())
}

func (h *Handler) HandleTerminalVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	snap, err := h.terminal.Verify(ctx, req.ParsedMethod(), req.StudentID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, snap)
}

func (h *Handler) HandleTerminalDestination(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ConfirmDestinationRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	snap, err := h.terminal.ConfirmDestination(ctx, req.Destination)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, snap)
}

func (h *Handler) HandleTerminalReset(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.terminal.Reset())
}

func (h *Handler) parseDay(raw string) (time.Time, error) {
	day, err := time.ParseInLocation(time.DateOnly, raw, h.location)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, "date must be YYYY-MM-DD")
	}
	return day, nil
}
