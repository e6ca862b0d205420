package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-budget/internal/adapter/memory"
	"ad-budget/internal/adapter/usecase"
	"ad-budget/internal/config"
	"ad-budget/internal/core/port"
	"ad-budget/internal/scheduler"
)

func TestSpendSummary(t *testing.T) {
	got := spendSummary(&port.SpendReceipt{
		CampaignID:   7,
		CampaignName: "Autumn Sale",
		Amount:       decimal.RequireFromString("12.5"),
	})
	assert.Equal(t, "Successfully simulated $12.50 spend for Campaign Autumn Sale (ID 7)", got)
}

func TestSweepJobsFromDefaultConfig(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	loc, err := cfg.Scheduler.Location()
	require.NoError(t, err)

	svc := usecase.NewBudgetUseCase(memory.NewLedgerStore())
	jobs := sweepJobs(cfg.Scheduler, svc)

	specs := make(map[string]string, len(jobs))
	for _, j := range jobs {
		specs[j.Name] = j.Spec
	}
	assert.Equal(t, map[string]string{
		usecase.SweepBudgetEnforcement: "*/5 * * * *",
		usecase.SweepDayparting:        "0 * * * *",
		usecase.SweepDailyReset:        "0 0 * * *",
		usecase.SweepMonthlyReset:      "0 0 1 * *",
	}, specs)

	_, err = scheduler.New(loc, nil, jobs...)
	require.NoError(t, err)
}
