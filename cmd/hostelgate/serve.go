package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hostelgate/internal/platform/config"
	"hostelgate/internal/platform/httpserver"
	"hostelgate/internal/platform/logger"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	a, err := buildApp(ctx, deps{
		cfg:      cfg,
		logger:   log,
		clock:    clock.WallClock,
		registry: prometheus.DefaultRegisterer,
		gatherer: prometheus.DefaultGatherer,
	})
	if err != nil {
		return err
	}

	srv := httpserver.New(cfg.Addr, a.router)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting hostelgate", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if a.auditWorker != nil {
		g.Go(func() error {
			err := a.auditWorker.Run(gctx)
			closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
			defer cancel()
			if cerr := a.auditSink.Close(closeCtx); cerr != nil {
				log.Warn("failed to flush audit sink", "error", cerr)
			}
			return err
		})
	}

	return g.Wait()
}
