package port

import (
	"context"

	"github.com/shopspring/decimal"
)

// BudgetUseCase is the inbound port of the enforcement engine. The four Run
// operations are invoked by the scheduler; IngestSpend by spend-event
// callers (HTTP, CLI).
type BudgetUseCase interface {
	// IngestSpend adds amount to the campaign and its brand, pausing the
	// campaign when the brand goes over budget. It never activates a
	// campaign. Errors: ErrNotFound, ErrInvalidAmount, or a store error.
	IngestSpend(ctx context.Context, campaignID int64, amount decimal.Decimal) (*SpendReceipt, error)

	// RunBudgetEnforcement pauses active campaigns of over-budget brands.
	RunBudgetEnforcement(ctx context.Context) (SweepReport, error)

	// RunDaypartingEnforcement reconciles every campaign's activation with
	// its schedule window and brand budget for the current hour.
	RunDaypartingEnforcement(ctx context.Context) (SweepReport, error)

	// RunDailyReset zeroes daily spend on brands then campaigns, and
	// reactivates campaigns that are in window and within budget.
	RunDailyReset(ctx context.Context) (SweepReport, error)

	// RunMonthlyReset zeroes monthly spend on every brand.
	RunMonthlyReset(ctx context.Context) (SweepReport, error)
}

// SpendReceipt describes the state left behind by one IngestSpend call.
type SpendReceipt struct {
	CampaignID        int64           `json:"campaign_id"`
	CampaignName      string          `json:"campaign_name"`
	Amount            decimal.Decimal `json:"amount"`
	IsActive          bool            `json:"is_active"`
	Paused            bool            `json:"paused"` // this call flipped the campaign to paused
	BrandDailySpend   decimal.Decimal `json:"brand_daily_spend"`
	BrandMonthlySpend decimal.Decimal `json:"brand_monthly_spend"`
}

// SweepReport summarises one sweep. Processed counts records visited and
// Changed those the sweep modified: an activation flip for campaigns, a
// non-zero counter zeroed for brands. Skipped counts records that vanished
// between listing and update, Failed those whose update returned an error.
type SweepReport struct {
	Name      string `json:"name"`
	RunID     string `json:"run_id"`
	Processed int    `json:"processed"`
	Changed   int    `json:"changed"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}
