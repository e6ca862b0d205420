package configs

import (
	"fmt"
	"time"
)

// Scheduler maps each periodic operation to a standard five-field cron
// expression evaluated in Timezone. The same zone decides the "current
// hour" for dayparting.
type Scheduler struct {
	Timezone          string `env:"TIMEZONE" envDefault:"UTC"`
	BudgetEnforcement string `env:"BUDGET_ENFORCEMENT" envDefault:"*/5 * * * *"`
	Dayparting        string `env:"DAYPARTING" envDefault:"0 * * * *"`
	DailyReset        string `env:"DAILY_RESET" envDefault:"0 0 * * *"`
	MonthlyReset      string `env:"MONTHLY_RESET" envDefault:"0 0 1 * *"`
}

// Location resolves Timezone.
func (c Scheduler) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
