package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Seed inserts demo brands, schedules and campaigns. Existing ids are left
// untouched, so it is safe to run more than once.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	windows := [][2]int{{6, 12}, {9, 17}, {12, 23}, {18, 23}}
	for i, w := range windows {
		_, err := db.Exec(ctx, `INSERT INTO schedules (id, start_hour, end_hour)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, i+1, w[0], w[1])
		if err != nil {
			return err
		}
	}

	for i := 1; i <= 5; i++ {
		dailyBudget := decimal.NewFromInt(int64(100 * i))
		monthlyBudget := dailyBudget.Mul(decimal.NewFromInt(25))
		_, err := db.Exec(ctx, `INSERT INTO brands (id, name, daily_budget, monthly_budget)
VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`, i, fmt.Sprintf("Brand %d", i), dailyBudget, monthlyBudget)
		if err != nil {
			return err
		}

		for j := 1; j <= 4; j++ {
			id := (i-1)*4 + j
			var scheduleID *int
			if r.Intn(4) > 0 {
				s := r.Intn(len(windows)) + 1
				scheduleID = &s
			}
			_, err = db.Exec(ctx, `INSERT INTO campaigns (id, brand_id, name, is_active, schedule_id)
VALUES ($1, $2, $3, true, $4) ON CONFLICT DO NOTHING`, id, i, fmt.Sprintf("Campaign %d-%d", i, j), scheduleID)
			if err != nil {
				return err
			}
		}
	}

	// keep BIGSERIAL sequences ahead of the explicit ids above
	for _, table := range []string{"brands", "schedules", "campaigns"} {
		_, err := db.Exec(ctx, fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))`, table))
		if err != nil {
			return err
		}
	}
	return nil
}
