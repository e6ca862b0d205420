package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

func TestBudgetEnforcementPausesOnlyBreachedBrands(t *testing.T) {
	f := newFixture(t, 10)
	f.brand(1, "120", "100", "120", "1000")  // daily breach
	f.brand(2, "50", "100", "1001", "1000")  // monthly breach
	f.brand(3, "100", "100", "1000", "1000") // exactly at both ceilings
	f.campaign(10, 1, 0, true)
	f.campaign(11, 1, 0, false)
	f.campaign(20, 2, 0, true)
	f.campaign(30, 3, 0, true)
	f.campaign(31, 3, 0, false)

	report, err := f.uc.RunBudgetEnforcement(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SweepBudgetEnforcement, report.Name)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 5, report.Processed)
	assert.Equal(t, 2, report.Changed)

	assert.False(t, f.getCampaign(10).IsActive)
	assert.False(t, f.getCampaign(11).IsActive)
	assert.False(t, f.getCampaign(20).IsActive)
	assert.True(t, f.getCampaign(30).IsActive)
	// the sweep never activates
	assert.False(t, f.getCampaign(31).IsActive)
}

func TestDaypartingFollowsScheduleWindow(t *testing.T) {
	f := newFixture(t, 10)
	f.brand(1, "0", "100", "0", "1000")
	f.schedule(5, 9, 17)
	f.campaign(10, 1, 5, false)

	_, err := f.uc.RunDaypartingEnforcement(context.Background())
	require.NoError(t, err)
	assert.True(t, f.getCampaign(10).IsActive)

	f.setHour(20)
	report, err := f.uc.RunDaypartingEnforcement(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Changed)
	assert.False(t, f.getCampaign(10).IsActive)
}

func TestDaypartingWindowEdges(t *testing.T) {
	f := newFixture(t, 9)
	f.brand(1, "0", "100", "0", "1000")
	f.schedule(5, 9, 17)
	f.campaign(10, 1, 5, false)

	_, err := f.uc.RunDaypartingEnforcement(context.Background())
	require.NoError(t, err)
	assert.True(t, f.getCampaign(10).IsActive, "start hour is inclusive")

	f.setHour(17)
	_, err = f.uc.RunDaypartingEnforcement(context.Background())
	require.NoError(t, err)
	assert.False(t, f.getCampaign(10).IsActive, "end hour is exclusive")
}

func TestDaypartingUnscheduledCampaignAlwaysInWindow(t *testing.T) {
	f := newFixture(t, 0)
	f.brand(1, "0", "100", "0", "1000")
	f.campaign(10, 1, 0, false)

	for _, hour := range []int{0, 3, 12, 23} {
		f.setHour(hour)
		_, err := f.uc.RunDaypartingEnforcement(context.Background())
		require.NoError(t, err)
		assert.True(t, f.getCampaign(10).IsActive, "hour %d", hour)
	}
}

// Windows with start >= end are not treated as wrapping past midnight.
func TestDaypartingDoesNotWrapAroundMidnight(t *testing.T) {
	f := newFixture(t, 23)
	f.brand(1, "0", "100", "0", "1000")
	f.schedule(5, 22, 6)
	f.campaign(10, 1, 5, true)

	_, err := f.uc.RunDaypartingEnforcement(context.Background())
	require.NoError(t, err)
	assert.False(t, f.getCampaign(10).IsActive)
}

// Activation uses <= while pausing uses >: a brand exactly at its ceiling
// keeps its campaigns eligible, one cent above pauses them.
func TestDaypartingBudgetBoundary(t *testing.T) {
	f := newFixture(t, 10)
	f.brand(1, "100", "100", "1000", "1000")
	f.brand(2, "100.01", "100", "100.01", "1000")
	f.campaign(10, 1, 0, false)
	f.campaign(20, 2, 0, true)

	_, err := f.uc.RunDaypartingEnforcement(context.Background())
	require.NoError(t, err)
	assert.True(t, f.getCampaign(10).IsActive)
	assert.False(t, f.getCampaign(20).IsActive)
}

func TestDaypartingIsIdempotent(t *testing.T) {
	f := newFixture(t, 12)
	f.brand(1, "0", "100", "0", "1000")
	f.brand(2, "150", "100", "150", "1000")
	f.schedule(5, 9, 17)
	f.schedule(6, 18, 22)
	f.campaign(10, 1, 5, false)
	f.campaign(11, 1, 6, true)
	f.campaign(12, 1, 0, true)
	f.campaign(20, 2, 5, true)

	first, err := f.uc.RunDaypartingEnforcement(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, first.Changed)
	state := map[int64]bool{}
	for _, id := range []int64{10, 11, 12, 20} {
		state[id] = f.getCampaign(id).IsActive
	}

	second, err := f.uc.RunDaypartingEnforcement(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Changed)
	for id, active := range state {
		assert.Equal(t, active, f.getCampaign(id).IsActive, "campaign %d", id)
	}
}

func TestDaypartingUsesReferenceTimezone(t *testing.T) {
	f := newFixture(t, 7) // 07:30 UTC
	tokyo := time.FixedZone("JST", 9*60*60)
	f.uc.loc = tokyo // 16:30 local
	f.brand(1, "0", "100", "0", "1000")
	f.schedule(5, 9, 17)
	f.campaign(10, 1, 5, false)

	_, err := f.uc.RunDaypartingEnforcement(context.Background())
	require.NoError(t, err)
	assert.True(t, f.getCampaign(10).IsActive)
}

func TestDailyResetZeroesAndReactivates(t *testing.T) {
	f := newFixture(t, 0)
	f.brand(1, "150", "100", "300", "1000") // over daily budget yesterday
	f.brand(2, "50", "100", "1500", "1000") // still over monthly budget
	f.schedule(5, 0, 6)
	f.schedule(6, 9, 17)
	f.campaign(10, 1, 5, false) // in window, brand recovers: reactivated
	f.campaign(11, 1, 6, false) // out of window: stays paused
	f.campaign(12, 1, 6, true)  // out of window but active: not paused by reset
	f.campaign(20, 2, 0, false) // monthly breach persists: stays paused

	for _, id := range []int64{10, 11} {
		_, err := f.uc.IngestSpend(context.Background(), id, money("0.50"))
		require.NoError(t, err)
	}

	report, err := f.uc.RunDailyReset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, report.Processed)

	assert.True(t, f.getBrand(1).CurrentDailySpend.IsZero())
	assert.True(t, f.getBrand(2).CurrentDailySpend.IsZero())
	assert.True(t, f.getBrand(1).CurrentMonthlySpend.Equal(money("301")))

	assert.True(t, f.getCampaign(10).IsActive)
	assert.False(t, f.getCampaign(11).IsActive)
	assert.True(t, f.getCampaign(12).IsActive)
	assert.False(t, f.getCampaign(20).IsActive)
	for _, id := range []int64{10, 11, 12, 20} {
		assert.True(t, f.getCampaign(id).DailySpend.IsZero(), "campaign %d", id)
	}
}

func TestMonthlyResetOnlyTouchesMonthlySpend(t *testing.T) {
	f := newFixture(t, 0)
	f.brand(1, "40", "100", "1200", "1000")
	f.campaign(10, 1, 0, false)

	report, err := f.uc.RunMonthlyReset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Changed)

	b := f.getBrand(1)
	assert.True(t, b.CurrentMonthlySpend.IsZero())
	assert.True(t, b.CurrentDailySpend.Equal(money("40")))
	assert.False(t, f.getCampaign(10).IsActive)
}

func overBudgetCampaign(id int64) domain.Campaign {
	return domain.Campaign{
		ID:       id,
		IsActive: true,
		Brand: &domain.Brand{
			ID:                1,
			DailyBudget:       money("10"),
			MonthlyBudget:     money("100"),
			CurrentDailySpend: money("11"),
		},
	}
}

func TestSweepContinuesPastRecordFailures(t *testing.T) {
	store, uc := newMockedUseCase(t)

	listed := []domain.Campaign{overBudgetCampaign(1), overBudgetCampaign(2), overBudgetCampaign(3)}
	store.EXPECT().ListCampaignsWithBrandAndSchedule(mock.Anything).Return(listed, nil).Once()
	store.EXPECT().Transact(mock.Anything, mock.Anything).RunAndReturn(passThroughTx)
	store.EXPECT().GetCampaignWithBrand(mock.Anything, mock.AnythingOfType("int64")).
		RunAndReturn(func(_ context.Context, id int64) (*domain.Campaign, error) {
			c := overBudgetCampaign(id)
			return &c, nil
		})
	store.EXPECT().SaveCampaign(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool { return c.ID == 2 })).
		Return(errors.New("disk full")).Once()
	store.EXPECT().SaveCampaign(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool { return c.ID != 2 })).
		Return(nil).Twice()

	report, err := uc.RunBudgetEnforcement(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "campaign 2")
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 2, report.Changed)
	assert.Equal(t, 1, report.Failed)
}

func TestSweepSkipsRecordsDeletedMidRun(t *testing.T) {
	store, uc := newMockedUseCase(t)

	store.EXPECT().ListCampaignsWithBrandAndSchedule(mock.Anything).
		Return([]domain.Campaign{overBudgetCampaign(1)}, nil).Once()
	store.EXPECT().Transact(mock.Anything, mock.Anything).RunAndReturn(passThroughTx).Once()
	store.EXPECT().GetCampaignWithBrand(mock.Anything, int64(1)).Return(nil, port.ErrNotFound).Once()

	report, err := uc.RunDaypartingEnforcement(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Failed)
}

func TestDailyResetAbortsWhenBrandsCannotBeListed(t *testing.T) {
	store, uc := newMockedUseCase(t)

	store.EXPECT().ListBrands(mock.Anything).Return(nil, port.ErrStoreUnavailable).Once()

	_, err := uc.RunDailyReset(context.Background())
	assert.ErrorIs(t, err, port.ErrStoreUnavailable)
}

func TestSweepStopsOnCancelledContext(t *testing.T) {
	f := newFixture(t, 10)
	f.brand(1, "0", "100", "0", "1000")
	f.campaign(10, 1, 0, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := f.uc.RunDaypartingEnforcement(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, report.Processed)
	assert.False(t, f.getCampaign(10).IsActive)
}
