package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
	"ad-budget/internal/metrics"
)

// IngestSpend applies one spend event. The campaign, its brand and the
// pause decision are read and written in a single transaction so that
// concurrent events on the same brand never lose an increment. A campaign
// that is already paused stays paused and still accumulates spend.
func (u *BudgetUseCase) IngestSpend(ctx context.Context, campaignID int64, amount decimal.Decimal) (*port.SpendReceipt, error) {
	if !domain.ValidAmount(amount) {
		u.metrics.ObserveSpend(metrics.SpendRejected, amount)
		return nil, fmt.Errorf("%w: %s is negative or finer than %d decimal places",
			port.ErrInvalidAmount, amount, domain.MoneyScale)
	}

	var receipt port.SpendReceipt
	err := u.transact(ctx, func(ctx context.Context) error {
		c, err := u.store.GetCampaignWithBrand(ctx, campaignID)
		if err != nil {
			return err
		}
		wasActive := c.IsActive

		c.DailySpend = c.DailySpend.Add(amount)
		c.Brand.AddSpend(amount)
		if c.Brand.OverBudget() {
			c.IsActive = false
		}

		if err = u.store.SaveBrand(ctx, *c.Brand); err != nil {
			return err
		}
		if err = u.store.SaveCampaign(ctx, *c); err != nil {
			return err
		}

		receipt = port.SpendReceipt{
			CampaignID:        c.ID,
			CampaignName:      c.Name,
			Amount:            amount,
			IsActive:          c.IsActive,
			Paused:            wasActive && !c.IsActive,
			BrandDailySpend:   c.Brand.CurrentDailySpend,
			BrandMonthlySpend: c.Brand.CurrentMonthlySpend,
		}
		return nil
	})
	if err != nil {
		outcome := metrics.SpendFailed
		if errors.Is(err, port.ErrNotFound) {
			outcome = metrics.SpendRejected
		}
		u.metrics.ObserveSpend(outcome, amount)
		return nil, fmt.Errorf("ingest spend for campaign %d: %w", campaignID, err)
	}

	if receipt.Paused {
		u.metrics.ObserveSpend(metrics.SpendPaused, amount)
		u.logger.Info("campaign paused: brand over budget",
			slog.Int64("campaign_id", receipt.CampaignID),
			slog.String("brand_daily_spend", receipt.BrandDailySpend.String()),
			slog.String("brand_monthly_spend", receipt.BrandMonthlySpend.String()),
		)
	} else {
		u.metrics.ObserveSpend(metrics.SpendAccepted, amount)
	}
	return &receipt, nil
}
