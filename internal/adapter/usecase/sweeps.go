package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

// sweep accumulates the outcome of one periodic run. Per-record failures
// are collected rather than returned so the loop always visits every
// record.
type sweep struct {
	report  port.SweepReport
	errs    []error
	started time.Time
	logger  *slog.Logger
}

func (u *BudgetUseCase) startSweep(name string) *sweep {
	runID := uuid.NewString()
	return &sweep{
		report:  port.SweepReport{Name: name, RunID: runID},
		started: time.Now(),
		logger:  u.logger.With(slog.String("sweep", name), slog.String("run_id", runID)),
	}
}

// record classifies the result of one record update. A record that
// disappeared between listing and update is skipped, not failed.
func (s *sweep) record(kind string, id int64, changed bool, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		s.report.Skipped++
	case err != nil:
		s.report.Failed++
		err = fmt.Errorf("%s %d: %w", kind, id, err)
		s.errs = append(s.errs, err)
		s.logger.Warn("record update failed", slog.String("kind", kind), slog.Int64("id", id), slog.Any("error", err))
	case changed:
		s.report.Changed++
	}
}

// interrupted stops a sweep loop once ctx is done.
func (s *sweep) interrupted(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		s.errs = append(s.errs, err)
		return true
	}
	return false
}

func (u *BudgetUseCase) finishSweep(s *sweep, fatal error) (port.SweepReport, error) {
	if fatal != nil {
		s.errs = append(s.errs, fatal)
	}
	err := errors.Join(s.errs...)
	elapsed := time.Since(s.started)
	u.metrics.ObserveSweep(s.report, elapsed, err)

	attrs := []any{
		slog.Int("processed", s.report.Processed),
		slog.Int("changed", s.report.Changed),
		slog.Int("skipped", s.report.Skipped),
		slog.Int("failed", s.report.Failed),
		slog.Duration("elapsed", elapsed),
	}
	if err != nil {
		s.logger.Error("sweep finished with errors", append(attrs, slog.Any("error", err))...)
	} else {
		s.logger.Info("sweep finished", attrs...)
	}
	return s.report, err
}

// RunBudgetEnforcement pauses every active campaign whose brand is over its
// daily or monthly budget. Only campaigns that look breached in the listing
// are re-checked under lock. It never activates anything.
func (u *BudgetUseCase) RunBudgetEnforcement(ctx context.Context) (port.SweepReport, error) {
	s := u.startSweep(SweepBudgetEnforcement)

	campaigns, err := u.store.ListCampaignsWithBrandAndSchedule(ctx)
	if err != nil {
		return u.finishSweep(s, fmt.Errorf("list campaigns: %w", err))
	}
	for _, listed := range campaigns {
		if s.interrupted(ctx) {
			break
		}
		s.report.Processed++
		if !listed.IsActive || !listed.Brand.OverBudget() {
			continue
		}
		changed, err := u.updateCampaign(ctx, listed.ID, func(c *domain.Campaign) bool {
			if !c.IsActive || !c.Brand.OverBudget() {
				return false
			}
			c.IsActive = false
			return true
		})
		s.record("campaign", listed.ID, changed, err)
	}
	return u.finishSweep(s, nil)
}

// RunDaypartingEnforcement sets every campaign active exactly when it is
// inside its schedule window for the current hour and its brand is within
// budget, and paused otherwise. Running it twice without intervening
// changes leaves the same state.
func (u *BudgetUseCase) RunDaypartingEnforcement(ctx context.Context) (port.SweepReport, error) {
	s := u.startSweep(SweepDayparting)
	hour := u.currentHour()

	campaigns, err := u.store.ListCampaignsWithBrandAndSchedule(ctx)
	if err != nil {
		return u.finishSweep(s, fmt.Errorf("list campaigns: %w", err))
	}
	for _, listed := range campaigns {
		if s.interrupted(ctx) {
			break
		}
		s.report.Processed++
		schedule := listed.Schedule
		changed, err := u.updateCampaign(ctx, listed.ID, func(c *domain.Campaign) bool {
			want := domain.InWindow(schedule, hour) && c.Brand.BudgetOK()
			if c.IsActive == want {
				return false
			}
			c.IsActive = want
			return true
		})
		s.record("campaign", listed.ID, changed, err)
	}
	return u.finishSweep(s, nil)
}

// RunDailyReset zeroes every brand's daily spend, then every campaign's
// daily spend, reactivating campaigns that are in window and within budget
// against the zeroed brand. Campaigns failing that check keep their current
// state; the reset never pauses. A failure to list brands aborts the run
// before any campaign is touched.
func (u *BudgetUseCase) RunDailyReset(ctx context.Context) (port.SweepReport, error) {
	s := u.startSweep(SweepDailyReset)
	hour := u.currentHour()

	brands, err := u.store.ListBrands(ctx)
	if err != nil {
		return u.finishSweep(s, fmt.Errorf("list brands: %w", err))
	}
	for _, b := range brands {
		if s.interrupted(ctx) {
			return u.finishSweep(s, nil)
		}
		s.report.Processed++
		changed, err := u.updateBrand(ctx, b.ID, func(b *domain.Brand) bool {
			if b.CurrentDailySpend.IsZero() {
				return false
			}
			b.CurrentDailySpend = decimal.Zero
			return true
		})
		s.record("brand", b.ID, changed, err)
	}

	campaigns, err := u.store.ListCampaignsWithBrandAndSchedule(ctx)
	if err != nil {
		return u.finishSweep(s, fmt.Errorf("list campaigns: %w", err))
	}
	for _, listed := range campaigns {
		if s.interrupted(ctx) {
			break
		}
		s.report.Processed++
		schedule := listed.Schedule
		changed, err := u.updateCampaign(ctx, listed.ID, func(c *domain.Campaign) bool {
			c.DailySpend = decimal.Zero
			if domain.InWindow(schedule, hour) && c.Brand.BudgetOK() {
				c.IsActive = true
			}
			return true
		})
		s.record("campaign", listed.ID, changed, err)
	}
	return u.finishSweep(s, nil)
}

// RunMonthlyReset zeroes every brand's monthly spend. Campaigns and daily
// totals are left alone.
func (u *BudgetUseCase) RunMonthlyReset(ctx context.Context) (port.SweepReport, error) {
	s := u.startSweep(SweepMonthlyReset)

	brands, err := u.store.ListBrands(ctx)
	if err != nil {
		return u.finishSweep(s, fmt.Errorf("list brands: %w", err))
	}
	for _, b := range brands {
		if s.interrupted(ctx) {
			break
		}
		s.report.Processed++
		changed, err := u.updateBrand(ctx, b.ID, func(b *domain.Brand) bool {
			if b.CurrentMonthlySpend.IsZero() {
				return false
			}
			b.CurrentMonthlySpend = decimal.Zero
			return true
		})
		s.record("brand", b.ID, changed, err)
	}
	return u.finishSweep(s, nil)
}
