package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"ad-budget/db/migrations"
	"ad-budget/internal/adapter/usecase"
	"ad-budget/internal/config"
	"ad-budget/internal/config/configs"
	"ad-budget/internal/core/port"
	"ad-budget/internal/db"
	"ad-budget/internal/scheduler"
)

// env is what every subcommand needs before doing work.
type env struct {
	cfg    config.Config
	logger *slog.Logger
}

func loadEnv() (env, error) {
	cfg, err := config.Load()
	if err != nil {
		return env{}, fmt.Errorf("load config: %w", err)
	}
	return env{cfg: cfg, logger: cfg.Log.NewLogger(os.Stdout)}, nil
}

// openPool applies migrations when PSQL_RUN_MIGRATIONS is set, then opens
// the connection pool. A failed migration is logged and start-up goes on.
func (e env) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	if e.cfg.Psql.RunMigrations {
		if from, err := db.Migrate(e.cfg.Psql.Addr.String()); err != nil {
			e.logger.Error("migration error", slog.Any("error", err))
		} else {
			e.logger.Info("migrations applied successfully",
				slog.Uint64("from", uint64(from)), slog.Uint64("to", migrations.Version))
		}
	}

	pool, err := db.NewPostgresPool(ctx, e.cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	return pool, nil
}

// sweepJobs binds each sweep to its cron expression.
func sweepJobs(cfg configs.Scheduler, svc port.BudgetUseCase) []scheduler.Job {
	return []scheduler.Job{
		{Name: usecase.SweepBudgetEnforcement, Spec: cfg.BudgetEnforcement, Run: svc.RunBudgetEnforcement},
		{Name: usecase.SweepDayparting, Spec: cfg.Dayparting, Run: svc.RunDaypartingEnforcement},
		{Name: usecase.SweepDailyReset, Spec: cfg.DailyReset, Run: svc.RunDailyReset},
		{Name: usecase.SweepMonthlyReset, Spec: cfg.MonthlyReset, Run: svc.RunMonthlyReset},
	}
}
