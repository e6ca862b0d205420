package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ad-budget/db/migrations"
	"ad-budget/internal/adapter/postgres"
	"ad-budget/internal/adapter/usecase"
	"ad-budget/internal/core/port"
	"ad-budget/internal/db"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "apply the embedded schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			from, err := db.Migrate(e.cfg.Psql.Addr.String())
			if err != nil {
				return err
			}
			e.logger.Info("migrations applied successfully",
				slog.Uint64("from", uint64(from)), slog.Uint64("to", migrations.Version))
			return nil
		},
	}
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "insert demo brands, schedules and campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			pool, err := e.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if err = db.Seed(cmd.Context(), pool); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			e.logger.Info("demo data seeded")
			return nil
		},
	}
}

func simulateSpendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate-spend <campaign_id> <amount>",
		Short: "simulate a spend event for a campaign",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid campaign id %q", args[0])
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}
			pool, err := e.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := usecase.NewBudgetUseCase(postgres.NewLedgerRepository(pool),
				usecase.WithLogger(e.logger),
				usecase.WithRetry(e.cfg.Retry),
			)
			receipt, err := svc.IngestSpend(cmd.Context(), campaignID, amount)
			if errors.Is(err, port.ErrNotFound) {
				return fmt.Errorf("campaign with ID %d does not exist", campaignID)
			}
			if err != nil {
				return err
			}

			if receipt.Paused {
				e.logger.Warn("campaign paused", slog.Int64("campaign_id", campaignID))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), spendSummary(receipt))
			return err
		},
	}
}

func spendSummary(r *port.SpendReceipt) string {
	return fmt.Sprintf("Successfully simulated $%s spend for Campaign %s (ID %d)",
		r.Amount.StringFixed(2), r.CampaignName, r.CampaignID)
}
