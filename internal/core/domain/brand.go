package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits stored for every amount.
// The ledger columns are NUMERIC(14,2).
const MoneyScale = 2

// ValidAmount reports whether amount is a non-negative value representable
// at MoneyScale without rounding.
func ValidAmount(amount decimal.Decimal) bool {
	return !amount.IsNegative() && amount.Equal(amount.Truncate(MoneyScale))
}

// Brand is an advertiser account. Its budgets are shared by all of its
// campaigns. Monetary values are decimals with two fractional digits.
type Brand struct {
	ID                  int64
	Name                string
	DailyBudget         decimal.Decimal
	MonthlyBudget       decimal.Decimal
	CurrentDailySpend   decimal.Decimal
	CurrentMonthlySpend decimal.Decimal
	IsActive            bool // administrative flag, never changed by the engine
	CreatedAt           time.Time
}

// OverBudget reports whether either running total has strictly exceeded its
// ceiling. A true result pauses campaigns.
func (b Brand) OverBudget() bool {
	return b.CurrentDailySpend.GreaterThan(b.DailyBudget) ||
		b.CurrentMonthlySpend.GreaterThan(b.MonthlyBudget)
}

// BudgetOK reports whether both running totals are at or below their
// ceilings. A brand sitting exactly on a ceiling is still eligible for
// activation; only spend above it pauses.
func (b Brand) BudgetOK() bool {
	return b.CurrentDailySpend.LessThanOrEqual(b.DailyBudget) &&
		b.CurrentMonthlySpend.LessThanOrEqual(b.MonthlyBudget)
}

// AddSpend increments both running totals.
func (b *Brand) AddSpend(amount decimal.Decimal) {
	b.CurrentDailySpend = b.CurrentDailySpend.Add(amount)
	b.CurrentMonthlySpend = b.CurrentMonthlySpend.Add(amount)
}
