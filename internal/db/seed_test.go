package db

import (
	"context"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-budget/db/migrations"
	"ad-budget/internal/config/configs"
)

func TestMigrateAndSeed(t *testing.T) {
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	_, err = Migrate(addr)
	require.NoError(t, err)

	from, err := Migrate(addr)
	require.NoError(t, err)
	assert.Equal(t, uint(migrations.Version), from)

	ctx := context.Background()
	pool, err := NewPostgresPool(ctx, configs.Postgres{Addr: *u, MaxConns: 2})
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `TRUNCATE campaigns, schedules, brands RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	require.NoError(t, Seed(ctx, pool))
	require.NoError(t, Seed(ctx, pool))

	count := func(table string) int {
		var n int
		require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM `+table).Scan(&n))
		return n
	}
	assert.Equal(t, 5, count("brands"))
	assert.Equal(t, 4, count("schedules"))
	assert.Equal(t, 20, count("campaigns"))

	// sequences continue after the seeded ids
	var id int64
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO brands (name, daily_budget, monthly_budget) VALUES ('new', 1, 1) RETURNING id`).Scan(&id))
	assert.Equal(t, int64(6), id)
}
