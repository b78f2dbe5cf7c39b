package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inequality-analytics/internal/db"
	"inequality-analytics/internal/db/repository"
)

func TestSeeder_Run(t *testing.T) {
	conn := db.OpenTestSQLite(t)
	repo := repository.NewIndicatorRepo(conn)
	ctx := context.Background()

	loaded, err := New(repo, 42, nil).Run(ctx)
	require.NoError(t, err)
	assert.True(t, loaded)

	counts, err := repo.TableCounts(ctx)
	require.NoError(t, err)

	nonHigh := 0
	for _, spec := range countries {
		if spec.incomeGroup != incomeHigh {
			nonHigh++
		}
	}

	assert.Equal(t, int64(48), counts["country_metadata"])
	assert.Equal(t, int64(48*9), counts["gdp_data"])
	assert.Equal(t, int64(48*5), counts["inequality_metrics"])
	assert.Equal(t, int64(nonHigh*5), counts["poverty_indicators"])
	assert.Equal(t, int64(48*9), counts["trade_education"])
}

func TestSeeder_Idempotent(t *testing.T) {
	conn := db.OpenTestSQLite(t)
	repo := repository.NewIndicatorRepo(conn)
	ctx := context.Background()

	loaded, err := New(repo, 42, nil).Run(ctx)
	require.NoError(t, err)
	require.True(t, loaded)

	countsBefore, err := repo.TableCounts(ctx)
	require.NoError(t, err)

	// Second run against a populated store is a no-op.
	loaded, err = New(repo, 42, nil).Run(ctx)
	require.NoError(t, err)
	assert.False(t, loaded)

	countsAfter, err := repo.TableCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, countsBefore, countsAfter)
}

func TestSeeder_DeterministicForSameSeed(t *testing.T) {
	ctx := context.Background()

	load := func() map[string]float64 {
		conn := db.OpenTestSQLite(t)
		repo := repository.NewIndicatorRepo(conn)
		_, err := New(repo, 7, nil).Run(ctx)
		require.NoError(t, err)

		ds, err := repository.NewSnapshotRepo(conn).Load(ctx)
		require.NoError(t, err)

		ginis := make(map[string]float64)
		for _, c := range ds.Countries {
			for _, rec := range ds.Inequality(c.Code) {
				if rec.Year == 2023 && rec.Gini != nil {
					ginis[c.Code] = *rec.Gini
				}
			}
		}
		return ginis
	}

	assert.Equal(t, load(), load())
}

func TestSeeder_GeneratedValuesWithinBounds(t *testing.T) {
	conn := db.OpenTestSQLite(t)
	repo := repository.NewIndicatorRepo(conn)
	ctx := context.Background()

	_, err := New(repo, 42, nil).Run(ctx)
	require.NoError(t, err)

	ds, err := repository.NewSnapshotRepo(conn).Load(ctx)
	require.NoError(t, err)
	require.Len(t, ds.Countries, 48)
	assert.Empty(t, ds.Orphans)

	for _, c := range ds.Countries {
		for _, rec := range ds.Inequality(c.Code) {
			require.NotNil(t, rec.Gini)
			assert.GreaterOrEqual(t, *rec.Gini, 20.0)
			assert.LessOrEqual(t, *rec.Gini, 70.0)
		}
		for _, rec := range ds.Gdp(c.Code) {
			require.NotNil(t, rec.GdpPerCapita)
			assert.Greater(t, *rec.GdpPerCapita, 0.0)
			// GDP totals are intentionally not generated.
			assert.Nil(t, rec.GdpTotal)
		}
		if c.IncomeGroup == incomeHigh {
			assert.Empty(t, ds.Poverty(c.Code))
		} else {
			assert.Len(t, ds.Poverty(c.Code), 5)
		}
	}
}
