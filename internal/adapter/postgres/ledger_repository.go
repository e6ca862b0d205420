package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

var _ port.LedgerStore = (*LedgerRepository)(nil)

// LedgerRepository implements port.LedgerStore using pgxpool for PostgreSQL.
// Inside Transact every read takes row locks (FOR UPDATE) so concurrent
// read-modify-writes on the same brand or campaign queue up instead of
// overwriting each other.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) q(ctx context.Context) (querier, string) {
	if tx, ok := txFromContext(ctx); ok {
		return tx, " FOR UPDATE"
	}
	return r.pool, ""
}

// Transact runs fn inside a serializable transaction. Nested calls reuse
// the outer transaction.
func (r *LedgerRepository) Transact(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return classify(err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		return err
	}
	return classify(tx.Commit(ctx))
}

const brandColumns = `b.id, b.name, b.daily_budget, b.monthly_budget,
	b.current_daily_spend, b.current_monthly_spend, b.is_active, b.created_at`

func brandDest(b *domain.Brand) []any {
	return []any{&b.ID, &b.Name, &b.DailyBudget, &b.MonthlyBudget,
		&b.CurrentDailySpend, &b.CurrentMonthlySpend, &b.IsActive, &b.CreatedAt}
}

const campaignColumns = `c.id, c.brand_id, c.name, c.is_active, c.daily_spend, c.schedule_id, c.created_at`

func campaignDest(c *domain.Campaign) []any {
	return []any{&c.ID, &c.BrandID, &c.Name, &c.IsActive, &c.DailySpend, &c.ScheduleID, &c.CreatedAt}
}

// GetBrand returns a brand by id.
func (r *LedgerRepository) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	q, lock := r.q(ctx)
	var b domain.Brand
	err := q.QueryRow(ctx, `SELECT `+brandColumns+` FROM brands b WHERE b.id = $1`+lock, id).Scan(brandDest(&b)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("brand %d: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, classify(err)
	}
	return &b, nil
}

// SaveBrand writes the brand's spend totals. Budgets and the administrative
// flag are owned elsewhere and never written here.
func (r *LedgerRepository) SaveBrand(ctx context.Context, brand domain.Brand) error {
	q, _ := r.q(ctx)
	tag, err := q.Exec(ctx, `UPDATE brands SET current_daily_spend = $1, current_monthly_spend = $2, updated_at = now() WHERE id = $3`,
		brand.CurrentDailySpend, brand.CurrentMonthlySpend, brand.ID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("brand %d: %w", brand.ID, port.ErrNotFound)
	}
	return nil
}

// ListBrands returns all brands ordered by id.
func (r *LedgerRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	q, _ := r.q(ctx)
	rows, err := q.Query(ctx, `SELECT `+brandColumns+` FROM brands b ORDER BY b.id`)
	if err != nil {
		return nil, classify(err)
	}
	brands, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Brand, error) {
		var b domain.Brand
		err := row.Scan(brandDest(&b)...)
		return b, err
	})
	if err != nil {
		return nil, classify(err)
	}
	return brands, nil
}

// GetCampaignWithBrand returns a campaign joined with its brand. Inside a
// transaction both rows are locked.
func (r *LedgerRepository) GetCampaignWithBrand(ctx context.Context, id int64) (*domain.Campaign, error) {
	q, lock := r.q(ctx)
	var (
		c domain.Campaign
		b domain.Brand
	)
	query := `SELECT ` + campaignColumns + `, ` + brandColumns + `
		FROM campaigns c
		JOIN brands b ON b.id = c.brand_id
		WHERE c.id = $1` + lock
	err := q.QueryRow(ctx, query, id).Scan(append(campaignDest(&c), brandDest(&b)...)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, classify(err)
	}
	c.Brand = &b
	return &c, nil
}

// SaveCampaign writes the campaign's activation flag and daily spend.
func (r *LedgerRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	q, _ := r.q(ctx)
	tag, err := q.Exec(ctx, `UPDATE campaigns SET is_active = $1, daily_spend = $2, updated_at = now() WHERE id = $3`,
		campaign.IsActive, campaign.DailySpend, campaign.ID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", campaign.ID, port.ErrNotFound)
	}
	return nil
}

// ListCampaignsWithBrandAndSchedule returns every campaign with its brand
// and optional schedule in one query. It never locks.
func (r *LedgerRepository) ListCampaignsWithBrandAndSchedule(ctx context.Context) ([]domain.Campaign, error) {
	q, _ := r.q(ctx)
	query := `SELECT ` + campaignColumns + `, ` + brandColumns + `, s.id, s.start_hour, s.end_hour
		FROM campaigns c
		JOIN brands b ON b.id = c.brand_id
		LEFT JOIN schedules s ON s.id = c.schedule_id
		ORDER BY c.id`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c                  domain.Campaign
			b                  domain.Brand
			scheduleID         *int64
			startHour, endHour *int
		)
		dest := append(campaignDest(&c), brandDest(&b)...)
		dest = append(dest, &scheduleID, &startHour, &endHour)
		if err := row.Scan(dest...); err != nil {
			return c, err
		}
		c.Brand = &b
		if scheduleID != nil {
			c.Schedule = &domain.Schedule{ID: *scheduleID, StartHour: *startHour, EndHour: *endHour}
		}
		return c, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return campaigns, nil
}
