// Package handler exposes the audit trail to administrators.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	authmodels "hostelgate/internal/auth/models"
	"hostelgate/internal/platform/middleware"
	dErrors "hostelgate/pkg/domain-errors"
	"hostelgate/pkg/platform/audit"
	"hostelgate/pkg/platform/httputil"
	"hostelgate/pkg/requestcontext"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Reader reads back stored audit events.
type Reader interface {
	List(ctx context.Context, subject string) ([]audit.Event, error)
	Recent(ctx context.Context, limit int) ([]audit.Event, error)
}

// EventsResponse is the body of GET /audit.
type EventsResponse struct {
	Events []audit.Event `json:"events"`
}

type Handler struct {
	reader Reader
	logger *slog.Logger
}

func New(reader Reader, logger *slog.Logger) *Handler {
	return &Handler{reader: reader, logger: logger}
}

// Register mounts the routes that run behind RequireSession.
func (h *Handler) Register(r chi.Router) {
	r.With(middleware.RequireRole(h.logger, authmodels.RoleAdmin)).Get("/audit", h.HandleList)
}

// HandleList returns the events about ?subject= in emission order, or the
// ?limit= most recent events when no subject is given.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var (
		events []audit.Event
		err    error
	)
	if subject := strings.TrimSpace(query.Get("subject")); subject != "" {
		events, err = h.reader.List(ctx, subject)
	} else {
		limit, perr := parseLimit(query.Get("limit"))
		if perr != nil {
			httputil.WriteError(w, perr)
			return
		}
		events, err = h.reader.Recent(ctx, limit)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read audit trail",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read audit trail"))
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	httputil.WriteJSON(w, http.StatusOK, EventsResponse{Events: events})
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "limit must be a positive integer")
	}
	return min(n, maxLimit), nil
}
