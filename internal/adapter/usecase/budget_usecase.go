package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"ad-budget/internal/config/configs"
	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
	"ad-budget/internal/metrics"
)

// Sweep names. The scheduler registers jobs under the same names.
const (
	SweepBudgetEnforcement = "budget_enforcement"
	SweepDayparting        = "dayparting"
	SweepDailyReset        = "daily_reset"
	SweepMonthlyReset      = "monthly_reset"
)

var _ port.BudgetUseCase = (*BudgetUseCase)(nil)

// BudgetUseCase implements port.BudgetUseCase on top of a LedgerStore. Every
// record update is its own store transaction; sweeps therefore make partial
// progress under failure and are safe to re-run.
type BudgetUseCase struct {
	store   port.LedgerStore
	logger  *slog.Logger
	metrics *metrics.Metrics

	// loc is the reference zone for the "current hour" of dayparting.
	loc *time.Location
	now func() time.Time

	retry configs.Retry
}

// Option customises a BudgetUseCase.
type Option func(*BudgetUseCase)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(u *BudgetUseCase) { u.logger = l }
}

// WithMetrics enables Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *BudgetUseCase) { u.metrics = m }
}

// WithLocation sets the reference time zone. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(u *BudgetUseCase) { u.loc = loc }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *BudgetUseCase) { u.now = now }
}

// WithRetry bounds the retry of ErrStoreContention.
func WithRetry(r configs.Retry) Option {
	return func(u *BudgetUseCase) { u.retry = r }
}

// NewBudgetUseCase creates the engine over store.
func NewBudgetUseCase(store port.LedgerStore, opts ...Option) *BudgetUseCase {
	u := &BudgetUseCase{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
		loc:    time.UTC,
		now:    time.Now,
		retry: configs.Retry{
			MaxTries:        5,
			InitialInterval: 20 * time.Millisecond,
			MaxInterval:     time.Second,
		},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *BudgetUseCase) currentHour() int {
	return u.now().In(u.loc).Hour()
}

// transact runs fn in a store transaction, retrying contention with
// exponential backoff up to retry.MaxTries attempts. Any other error ends
// the loop immediately.
func (u *BudgetUseCase) transact(ctx context.Context, fn func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = u.retry.InitialInterval
	b.MaxInterval = u.retry.MaxInterval

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := u.store.Transact(ctx, fn)
		if err != nil && !errors.Is(err, port.ErrStoreContention) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(u.retry.MaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			u.logger.Debug("store contention, retrying", slog.Any("error", err), slog.Duration("next", next))
		}),
	)
	return err
}

// updateCampaign re-reads a campaign and its brand under lock, applies
// mutate and saves when mutate returns true. flipped reports whether the
// activation flag changed.
func (u *BudgetUseCase) updateCampaign(ctx context.Context, id int64, mutate func(c *domain.Campaign) bool) (flipped bool, err error) {
	var status string
	err = u.transact(ctx, func(ctx context.Context) error {
		flipped = false
		c, err := u.store.GetCampaignWithBrand(ctx, id)
		if err != nil {
			return err
		}
		before := c.IsActive
		if !mutate(c) {
			return nil
		}
		if err = u.store.SaveCampaign(ctx, *c); err != nil {
			return err
		}
		flipped = before != c.IsActive
		status = c.Status()
		return nil
	})
	if err == nil && flipped {
		u.logger.Debug("campaign activation changed", slog.Int64("campaign_id", id), slog.String("status", status))
	}
	return flipped, err
}

// updateBrand is updateCampaign for brands. changed mirrors mutate's result.
func (u *BudgetUseCase) updateBrand(ctx context.Context, id int64, mutate func(b *domain.Brand) bool) (changed bool, err error) {
	err = u.transact(ctx, func(ctx context.Context) error {
		changed = false
		b, err := u.store.GetBrand(ctx, id)
		if err != nil {
			return err
		}
		if !mutate(b) {
			return nil
		}
		if err = u.store.SaveBrand(ctx, *b); err != nil {
			return err
		}
		changed = true
		return nil
	})
	return changed, err
}
