package port

import (
	"context"

	"ad-budget/internal/core/domain"
)

// LedgerStore is the outbound port holding brands, schedules and campaigns.
// Implementations must be concurrency-safe.
//
// Reads performed through a context returned by Transact lock the rows they
// return until the transaction ends, so a read-modify-write on a record is
// serialized against every other writer of that record. Outside Transact
// reads are plain snapshots.
type LedgerStore interface {
	// Transact runs fn in a single transaction. A nested call joins the
	// outer transaction. Conflicts are reported as ErrStoreContention.
	Transact(ctx context.Context, fn func(ctx context.Context) error) error

	// GetBrand returns the brand by id or ErrNotFound.
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	// SaveBrand persists the brand's running spend totals.
	SaveBrand(ctx context.Context, brand domain.Brand) error
	// ListBrands returns every brand ordered by id.
	ListBrands(ctx context.Context) ([]domain.Brand, error)

	// GetCampaignWithBrand returns the campaign with Brand populated. The
	// Schedule is not loaded. Returns ErrNotFound for unknown ids.
	GetCampaignWithBrand(ctx context.Context, id int64) (*domain.Campaign, error)
	// SaveCampaign persists the campaign's activation flag and daily spend.
	SaveCampaign(ctx context.Context, campaign domain.Campaign) error
	// ListCampaignsWithBrandAndSchedule returns every campaign ordered by id
	// with Brand and (when linked) Schedule populated.
	ListCampaignsWithBrandAndSchedule(ctx context.Context) ([]domain.Campaign, error)
}
