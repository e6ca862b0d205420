package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ad-budget/internal/adapter/memory"
	"ad-budget/internal/config/configs"
	"ad-budget/internal/core/domain"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fixture wires the use case to an in-memory ledger and a settable clock.
type fixture struct {
	t     *testing.T
	store *memory.LedgerStore
	uc    *BudgetUseCase
	now   time.Time
}

func newFixture(t *testing.T, hour int) *fixture {
	f := &fixture{
		t:     t,
		store: memory.NewLedgerStore(),
		now:   time.Date(2026, 10, 17, hour, 30, 0, 0, time.UTC),
	}
	f.uc = NewBudgetUseCase(f.store,
		WithClock(func() time.Time { return f.now }),
		WithRetry(configs.Retry{MaxTries: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}),
	)
	return f
}

func (f *fixture) setHour(hour int) {
	f.now = time.Date(2026, 10, 17, hour, 30, 0, 0, time.UTC)
}

func (f *fixture) brand(id int64, daily, dailyBudget, monthly, monthlyBudget string) {
	f.store.PutBrand(domain.Brand{
		ID:                  id,
		Name:                "brand",
		DailyBudget:         money(dailyBudget),
		MonthlyBudget:       money(monthlyBudget),
		CurrentDailySpend:   money(daily),
		CurrentMonthlySpend: money(monthly),
		IsActive:            true,
	})
}

func (f *fixture) schedule(id int64, start, end int) {
	f.store.PutSchedule(domain.Schedule{ID: id, StartHour: start, EndHour: end})
}

// campaign adds a campaign; scheduleID 0 means unscheduled.
func (f *fixture) campaign(id, brandID, scheduleID int64, active bool) {
	c := domain.Campaign{ID: id, BrandID: brandID, Name: "campaign", IsActive: active}
	if scheduleID != 0 {
		c.ScheduleID = &scheduleID
	}
	f.store.PutCampaign(c)
}

func (f *fixture) getCampaign(id int64) *domain.Campaign {
	c, err := f.store.GetCampaignWithBrand(context.Background(), id)
	require.NoError(f.t, err)
	return c
}

func (f *fixture) getBrand(id int64) *domain.Brand {
	b, err := f.store.GetBrand(context.Background(), id)
	require.NoError(f.t, err)
	return b
}
