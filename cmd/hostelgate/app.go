package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"

	audithandler "hostelgate/internal/audit/handler"
	authhandler "hostelgate/internal/auth/handler"
	authmodels "hostelgate/internal/auth/models"
	authservice "hostelgate/internal/auth/service"
	sessionstore "hostelgate/internal/auth/store/session"
	gatehandler "hostelgate/internal/gate/handler"
	gateservice "hostelgate/internal/gate/service"
	gatestore "hostelgate/internal/gate/store"
	jwttoken "hostelgate/internal/jwt_token"
	"hostelgate/internal/platform/config"
	"hostelgate/internal/platform/httpserver"
	"hostelgate/internal/platform/metrics"
	"hostelgate/internal/terminal"
	"hostelgate/internal/verification"
	"hostelgate/pkg/platform/audit"
	"hostelgate/pkg/platform/audit/publisher"
	"hostelgate/pkg/platform/audit/publishers/kafka"
	auditmemory "hostelgate/pkg/platform/audit/store/memory"
	"hostelgate/pkg/platform/audit/worker"
)

const (
	tokenIssuer      = "hostelgate"
	tokenAudience    = "hostelgate-operators"
	auditQueueLength = 256
)

// app is the fully wired process.
type app struct {
	router     http.Handler
	gate       *gateservice.Service
	auth       *authservice.Service
	auditStore *auditmemory.InMemoryStore
	// auditWorker is nil when no Kafka brokers are configured.
	auditWorker *worker.Worker
	auditSink   *kafka.Sink
}

type deps struct {
	cfg      *config.Config
	logger   *slog.Logger
	clock    clock.Clock
	registry prometheus.Registerer
	gatherer prometheus.Gatherer
	verifier verification.Verifier
}

func loadSeed(cfg *config.Config, now time.Time) (gatestore.Seed, error) {
	if cfg.SeedFile == "" {
		return gatestore.DefaultSeed(now), nil
	}
	return gatestore.LoadSeedFile(cfg.SeedFile)
}

func buildApp(ctx context.Context, d deps) (*app, error) {
	cfg, logger := d.cfg, d.logger
	m := metrics.New(d.registry)

	a := &app{auditStore: auditmemory.NewInMemoryStore()}
	pubOpts := []publisher.Option{publisher.WithClock(d.clock), publisher.WithLogger(logger)}
	if len(cfg.Audit.KafkaBrokers) > 0 {
		sink, err := kafka.New(cfg.Audit.KafkaBrokers, cfg.Audit.KafkaTopic, logger)
		if err != nil {
			return nil, err
		}
		a.auditSink = sink
		a.auditWorker = worker.NewWorker(sink, auditQueueLength, logger)
		pubOpts = append(pubOpts, publisher.WithSink(a.auditWorker))
	}
	auditPublisher := publisher.New(a.auditStore, pubOpts...)

	seed, err := loadSeed(cfg, d.clock.Now())
	if err != nil {
		return nil, err
	}
	roster, err := gatestore.NewSeededRoster(ctx, seed)
	if err != nil {
		return nil, fmt.Errorf("seed roster: %w", err)
	}
	a.gate = gateservice.New(roster,
		gateservice.WithLogger(logger),
		gateservice.WithAuditPublisher(auditPublisher),
		gateservice.WithMetrics(m),
		gateservice.WithClock(d.clock),
		gateservice.WithDestinations(cfg.Destinations),
	)
	if o, err := a.gate.Occupancy(ctx); err == nil {
		m.SetOccupancy(o)
	}

	creds, err := credentials(cfg)
	if err != nil {
		return nil, err
	}
	tokens := jwttoken.NewJWTService(cfg.JWTSigningKey, tokenIssuer, tokenAudience, jwttoken.WithClock(d.clock))
	a.auth = authservice.New(creds, sessionstore.New(), tokens,
		authservice.WithLogger(logger),
		authservice.WithAuditPublisher(auditPublisher),
		authservice.WithMetrics(m),
		authservice.WithClock(d.clock),
		authservice.WithSessionTTL(cfg.SessionTTL),
	)

	verifier := d.verifier
	if verifier == nil {
		verifier = verification.NewSimulated(d.clock, cfg.Verification.FingerprintDelay, cfg.Verification.QRDelay)
	}
	term := terminal.New(a.gate, verifier,
		terminal.WithClock(d.clock),
		terminal.WithProcessingDelay(cfg.Verification.ProcessingDelay),
		terminal.WithResultDisplay(cfg.Verification.ResultDisplay),
		terminal.WithLogger(logger),
	)

	authH := authhandler.New(a.auth, logger)
	gateH := gatehandler.New(a.gate, term, logger, gatehandler.WithClock(d.clock))
	auditH := audithandler.New(auditPublisher, logger)
	a.router = httpserver.NewRouter(httpserver.RouterConfig{
		Logger:         logger,
		Metrics:        m,
		Gatherer:       d.gatherer,
		Authenticator:  a.auth,
		RequestTimeout: cfg.RequestTimeout,
		Public:         []httpserver.RouteFunc{authH.RegisterPublic},
		Protected:      []httpserver.RouteFunc{authH.Register, gateH.Register, auditH.Register},
	})
	return a, nil
}

func credentials(cfg *config.Config) ([]authmodels.Credential, error) {
	admin, err := authservice.HashCredential(cfg.Admin.Username, cfg.Admin.Password, authmodels.RoleAdmin, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin credential: %w", err)
	}
	guard, err := authservice.HashCredential(cfg.Guard.Username, cfg.Guard.Password, authmodels.RoleGuard, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash guard credential: %w", err)
	}
	return []authmodels.Credential{admin, guard}, nil
}

// auditEvents lists everything the in-memory audit store holds.
func (a *app) auditEvents(ctx context.Context) ([]audit.Event, error) {
	return a.auditStore.ListAll(ctx)
}
