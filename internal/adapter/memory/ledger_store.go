// Package memory is an in-process LedgerStore. It backs the use case, HTTP
// and command tests, which run without PostgreSQL.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

type ctxTxKey struct{}

// LedgerStore keeps records in maps guarded by a single mutex. Transact
// holds the mutex for the whole callback, which serializes every
// read-modify-write in the store. Writes are applied immediately; a failing
// callback does not roll back what it already saved.
type LedgerStore struct {
	mu        sync.Mutex
	brands    map[int64]domain.Brand
	schedules map[int64]domain.Schedule
	campaigns map[int64]domain.Campaign
}

// NewLedgerStore returns an empty store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		brands:    make(map[int64]domain.Brand),
		schedules: make(map[int64]domain.Schedule),
		campaigns: make(map[int64]domain.Campaign),
	}
}

// PutBrand inserts or replaces a brand. Administrative path, used for setup.
func (s *LedgerStore) PutBrand(b domain.Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brands[b.ID] = b
}

// PutSchedule inserts or replaces a schedule.
func (s *LedgerStore) PutSchedule(sc domain.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[sc.ID] = sc
}

// PutCampaign inserts or replaces a campaign. Loaded relations are dropped.
func (s *LedgerStore) PutCampaign(c domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Brand, c.Schedule = nil, nil
	s.campaigns[c.ID] = c
}

// DeleteBrand removes a brand and its campaigns.
func (s *LedgerStore) DeleteBrand(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.brands, id)
	for cid, c := range s.campaigns {
		if c.BrandID == id {
			delete(s.campaigns, cid)
		}
	}
}

// DeleteSchedule removes a schedule and unlinks the campaigns using it.
func (s *LedgerStore) DeleteSchedule(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.schedules, id)
	for cid, c := range s.campaigns {
		if c.ScheduleID != nil && *c.ScheduleID == id {
			c.ScheduleID = nil
			s.campaigns[cid] = c
		}
	}
}

// DeleteCampaign removes a campaign.
func (s *LedgerStore) DeleteCampaign(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.campaigns, id)
}

// Transact implements port.LedgerStore.
func (s *LedgerStore) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, ctxTxKey{}, true))
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(ctxTxKey{}).(bool)
	return v
}

// lock acquires the mutex unless the caller already holds it via Transact.
func (s *LedgerStore) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// GetBrand implements port.LedgerStore.
func (s *LedgerStore) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	defer s.lock(ctx)()
	b, ok := s.brands[id]
	if !ok {
		return nil, fmt.Errorf("brand %d: %w", id, port.ErrNotFound)
	}
	return &b, nil
}

// SaveBrand implements port.LedgerStore. Only the spend totals are written.
func (s *LedgerStore) SaveBrand(ctx context.Context, brand domain.Brand) error {
	defer s.lock(ctx)()
	stored, ok := s.brands[brand.ID]
	if !ok {
		return fmt.Errorf("brand %d: %w", brand.ID, port.ErrNotFound)
	}
	stored.CurrentDailySpend = brand.CurrentDailySpend
	stored.CurrentMonthlySpend = brand.CurrentMonthlySpend
	s.brands[brand.ID] = stored
	return nil
}

// ListBrands implements port.LedgerStore.
func (s *LedgerStore) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	defer s.lock(ctx)()
	out := make([]domain.Brand, 0, len(s.brands))
	for _, b := range s.brands {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetCampaignWithBrand implements port.LedgerStore.
func (s *LedgerStore) GetCampaignWithBrand(ctx context.Context, id int64) (*domain.Campaign, error) {
	defer s.lock(ctx)()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	b, ok := s.brands[c.BrandID]
	if !ok {
		return nil, fmt.Errorf("brand %d of campaign %d: %w", c.BrandID, id, port.ErrNotFound)
	}
	c.Brand = &b
	return &c, nil
}

// SaveCampaign implements port.LedgerStore. Only the activation flag and
// daily spend are written.
func (s *LedgerStore) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	defer s.lock(ctx)()
	stored, ok := s.campaigns[campaign.ID]
	if !ok {
		return fmt.Errorf("campaign %d: %w", campaign.ID, port.ErrNotFound)
	}
	stored.IsActive = campaign.IsActive
	stored.DailySpend = campaign.DailySpend
	s.campaigns[campaign.ID] = stored
	return nil
}

// ListCampaignsWithBrandAndSchedule implements port.LedgerStore.
func (s *LedgerStore) ListCampaignsWithBrandAndSchedule(ctx context.Context) ([]domain.Campaign, error) {
	defer s.lock(ctx)()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		b, ok := s.brands[c.BrandID]
		if !ok {
			continue
		}
		c.Brand = &b
		if c.ScheduleID != nil {
			if sc, ok := s.schedules[*c.ScheduleID]; ok {
				c.Schedule = &sc
			}
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
