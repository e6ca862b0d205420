package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "ad-budget/internal/adapter/http"
	"ad-budget/internal/adapter/postgres"
	"ad-budget/internal/adapter/usecase"
	"ad-budget/internal/metrics"
	"ad-budget/internal/scheduler"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP server and the sweep scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			return e.serve(cmd.Context())
		},
	}
}

// serve wires the PostgreSQL ledger, the use case, the scheduler and the
// HTTP server, and blocks until ctx is cancelled or the server fails. On
// the way out it stops accepting requests and waits for running sweeps,
// both bounded by HTTP_SHUTDOWN_TIMEOUT.
func (e env) serve(ctx context.Context) error {
	loc, err := e.cfg.Scheduler.Location()
	if err != nil {
		return err
	}

	pool, err := e.openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := usecase.NewBudgetUseCase(postgres.NewLedgerRepository(pool),
		usecase.WithLogger(e.logger),
		usecase.WithMetrics(metrics.New(reg)),
		usecase.WithLocation(loc),
		usecase.WithRetry(e.cfg.Retry),
	)

	sched, err := scheduler.New(loc, e.logger, sweepJobs(e.cfg.Scheduler, svc)...)
	if err != nil {
		return err
	}
	if err = sched.Start(ctx); err != nil {
		return err
	}

	handler := httpadapter.NewHandler(svc, sched, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), e.logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", e.cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		e.logger.Info("server listening",
			slog.Int("port", int(e.cfg.HTTP.Port)),
			slog.String("env", e.cfg.Env),
			slog.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		e.logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), e.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		e.logger.Error("server shutdown error", slog.Any("error", shutdownErr))
	} else {
		e.logger.Info("server gracefully stopped")
	}

	select {
	case <-sched.Stop().Done():
		e.logger.Info("scheduler stopped")
	case <-shutdownCtx.Done():
		e.logger.Warn("scheduler stop timed out, abandoning running sweeps")
	}
	return err
}
