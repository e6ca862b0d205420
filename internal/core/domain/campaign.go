package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is an individually activatable advertising unit owned by a Brand.
// IsActive is the value the engine maintains. DailySpend is informational;
// budget decisions are taken on the owning brand.
//
// Brand and Schedule are only populated by repository methods that say so
// in their name. ScheduleID is nil for unscheduled campaigns.
type Campaign struct {
	ID         int64
	BrandID    int64
	Name       string
	IsActive   bool
	DailySpend decimal.Decimal
	ScheduleID *int64
	CreatedAt  time.Time

	Brand    *Brand
	Schedule *Schedule
}

// InSchedule reports whether the campaign may run at the given hour.
// Campaigns without a schedule are always in their window.
func (c Campaign) InSchedule(hour int) bool {
	return InWindow(c.Schedule, hour)
}

// InWindow is InSchedule for a schedule that may be absent.
func InWindow(s *Schedule, hour int) bool {
	if s == nil {
		return true
	}
	return s.Contains(hour)
}

// Status names the activation state for logs.
func (c Campaign) Status() string {
	if c.IsActive {
		return "active"
	}
	return "paused"
}
