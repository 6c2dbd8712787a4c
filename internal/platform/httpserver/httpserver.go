// Package httpserver assembles the chi router and the http.Server.
package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hostelgate/internal/platform/metrics"
	"hostelgate/internal/platform/middleware"
	"hostelgate/pkg/platform/httputil"
)

// New builds an HTTP server with sane defaults for this project.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// RouteFunc mounts a group of routes, e.g. a handler's Register method.
type RouteFunc func(r chi.Router)

// RouterConfig lists what NewRouter mounts.
type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Authenticator  middleware.Authenticator
	RequestTimeout time.Duration

	// Public routes need no session; Protected routes run behind
	// RequireSession.
	Public    []RouteFunc
	Protected []RouteFunc
}

// NewRouter builds the full route tree.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.LatencyMiddleware(cfg.Metrics))
	}
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	for _, mount := range cfg.Public {
		mount(r)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(cfg.Authenticator, cfg.Logger))
		for _, mount := range cfg.Protected {
			mount(r)
		}
	})
	return r
}
