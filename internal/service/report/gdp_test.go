package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inequality-analytics/internal/domain"
)

func TestGdpGrowthYoY_ConsecutiveYears(t *testing.T) {
	ds := domain.NewDataset(
		[]domain.Country{country("AAA", "Alpha", "Europe & Central Asia", "High income")},
		[]domain.GdpRecord{
			gdpRec("AAA", 2020, fp(100), nil),
			gdpRec("AAA", 2021, fp(110), nil),
			gdpRec("AAA", 2022, fp(121), nil),
		},
		nil, nil, nil,
	)

	res, err := GdpGrowthYoY(ds)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	assert.Equal(t, 2021, res.Rows[0][2])
	assert.Equal(t, 2020, res.Rows[0][3])
	assert.InDelta(t, 10.0, res.Rows[0][6].(float64), 1e-9)
	assert.Equal(t, 2022, res.Rows[1][2])
	assert.InDelta(t, 10.0, res.Rows[1][6].(float64), 1e-9)
}

func TestGdpGrowthYoY_GapTolerantLag(t *testing.T) {
	// Missing 2020 and 2022: "previous" is the prior record present, not
	// calendar year minus one.
	ds := domain.NewDataset(
		[]domain.Country{country("AAA", "Alpha", "Europe & Central Asia", "High income")},
		[]domain.GdpRecord{
			gdpRec("AAA", 2019, fp(100), nil),
			gdpRec("AAA", 2021, fp(120), nil),
			gdpRec("AAA", 2023, fp(150), nil),
		},
		nil, nil, nil,
	)

	res, err := GdpGrowthYoY(ds)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	assert.Equal(t, 2021, res.Rows[0][2])
	assert.Equal(t, 2019, res.Rows[0][3])
	assert.InDelta(t, 20.0, res.Rows[0][6].(float64), 1e-9)
	assert.Equal(t, 2023, res.Rows[1][2])
	assert.Equal(t, 2021, res.Rows[1][3])
	assert.InDelta(t, 25.0, res.Rows[1][6].(float64), 1e-9)
}

func TestGdpGrowthYoY_ExcludesNullAndZeroBase(t *testing.T) {
	ds := domain.NewDataset(
		[]domain.Country{country("AAA", "Alpha", "Europe & Central Asia", "High income")},
		[]domain.GdpRecord{
			gdpRec("AAA", 2019, fp(0), nil),
			gdpRec("AAA", 2020, fp(100), nil), // zero base, excluded
			gdpRec("AAA", 2021, nil, nil),     // null current, excluded
			gdpRec("AAA", 2022, fp(105), nil), // null base, excluded
		},
		nil, nil, nil,
	)

	res, err := GdpGrowthYoY(ds)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestClassifyRecovery(t *testing.T) {
	assert.Equal(t, RecoveryStrong, classifyRecovery(6))
	assert.Equal(t, RecoveryStrong, classifyRecovery(5))
	assert.Equal(t, RecoveryModerate, classifyRecovery(2))
	assert.Equal(t, RecoveryModerate, classifyRecovery(0))
	assert.Equal(t, RecoveryStagnant, classifyRecovery(-3))
	assert.Equal(t, RecoveryStagnant, classifyRecovery(-5))
	assert.Equal(t, RecoveryDecline, classifyRecovery(-5.01))
}

func TestPandemicRecovery(t *testing.T) {
	ds := domain.NewDataset(
		[]domain.Country{
			country("AAA", "Alpha", "Europe & Central Asia", "High income"),
			country("BBB", "Beta", "Europe & Central Asia", "High income"),
			country("CCC", "Gamma", "Europe & Central Asia", "High income"),
			country("DDD", "Delta", "Europe & Central Asia", "High income"),
			country("EEE", "Epsilon", "Europe & Central Asia", "High income"),
		},
		[]domain.GdpRecord{
			gdpRec("AAA", 2019, fp(100), nil), gdpRec("AAA", 2023, fp(106), nil),
			gdpRec("BBB", 2019, fp(100), nil), gdpRec("BBB", 2023, fp(102), nil),
			gdpRec("CCC", 2019, fp(100), nil), gdpRec("CCC", 2023, fp(97), nil),
			gdpRec("DDD", 2019, fp(100), nil), gdpRec("DDD", 2023, fp(90), nil),
			gdpRec("EEE", 2019, fp(100), nil), // no 2023, excluded
		},
		nil, nil, nil,
	)

	res, err := PandemicRecovery(ds)
	require.NoError(t, err)
	require.Len(t, res.Rows, 4)

	// Sorted by change descending.
	assert.Equal(t, "AAA", res.Rows[0][0])
	assert.Equal(t, RecoveryStrong, res.Rows[0][6])
	assert.Equal(t, "BBB", res.Rows[1][0])
	assert.Equal(t, RecoveryModerate, res.Rows[1][6])
	assert.Equal(t, "CCC", res.Rows[2][0])
	assert.Equal(t, RecoveryStagnant, res.Rows[2][6])
	assert.Equal(t, "DDD", res.Rows[3][0])
	assert.Equal(t, RecoveryDecline, res.Rows[3][6])
}

func TestGdpConvergence_CagrAndTiers(t *testing.T) {
	ds := domain.NewDataset(
		[]domain.Country{
			country("AAA", "Alpha", "South Asia", "Lower middle income"),
			country("BBB", "Beta", "Europe & Central Asia", "High income"),
			country("CCC", "Gamma", "Sub-Saharan Africa", "Low income"),
		},
		[]domain.GdpRecord{
			gdpRec("AAA", 2015, fp(1000), nil), gdpRec("AAA", 2023, fp(2000), nil),
			gdpRec("BBB", 2015, fp(40000), nil), gdpRec("BBB", 2023, fp(44000), nil),
			gdpRec("CCC", 2015, fp(400), nil), gdpRec("CCC", 2023, fp(900), nil), // base <= 500, excluded
		},
		nil, nil, nil,
	)

	res, err := GdpConvergence(ds)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	// Doubling over 8 years is ~9.05% CAGR; AAA leads.
	assert.Equal(t, "AAA", res.Rows[0][0])
	assert.Equal(t, "Low", res.Rows[0][2])
	assert.InDelta(t, 9.0508, res.Rows[0][5].(float64), 1e-3)

	assert.Equal(t, "BBB", res.Rows[1][0])
	assert.Equal(t, "High", res.Rows[1][2])
	assert.InDelta(t, 1.1985, res.Rows[1][5].(float64), 1e-3)
}

func TestGlobalComparison_IndependentClassification(t *testing.T) {
	// AAA: rich and unequal. BBB: poor and equal. CCC: rich and equal.
	ds := domain.NewDataset(
		[]domain.Country{
			country("AAA", "Alpha", "Latin America & Caribbean", "Upper middle income"),
			country("BBB", "Beta", "Europe & Central Asia", "High income"),
			country("CCC", "Gamma", "Europe & Central Asia", "High income"),
		},
		[]domain.GdpRecord{
			gdpRec("AAA", 2023, fp(50000), nil),
			gdpRec("BBB", 2023, fp(10000), nil),
			gdpRec("CCC", 2023, fp(40000), nil),
		},
		[]domain.InequalityRecord{
			giniRec("AAA", 2023, fp(50)),
			giniRec("BBB", 2023, fp(28)),
			giniRec("CCC", 2023, fp(30)),
		},
		nil, nil,
	)

	res, err := GlobalComparison(ds)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)

	// Means: GDP 33333.33, gini 36. Sorted by GDP descending.
	assert.Equal(t, []interface{}{"AAA", "Alpha", 50000.0, "Above Average", 50.0, "Above Average"}, res.Rows[0])
	assert.Equal(t, []interface{}{"CCC", "Gamma", 40000.0, "Above Average", 30.0, "Below Average"}, res.Rows[1])
	assert.Equal(t, []interface{}{"BBB", "Beta", 10000.0, "Below Average", 28.0, "Below Average"}, res.Rows[2])
}

func TestGrowthVsInequality_SelfReferentialThresholds(t *testing.T) {
	// Averages are computed over the same derived table being filtered:
	// growth bar = 3, gini bar = 40. Only AAA clears both strictly.
	ds := domain.NewDataset(
		[]domain.Country{
			country("AAA", "Alpha", "East Asia & Pacific", "Upper middle income"),
			country("BBB", "Beta", "Sub-Saharan Africa", "Low income"),
			country("CCC", "Gamma", "Europe & Central Asia", "High income"),
		},
		[]domain.GdpRecord{
			gdpRec("AAA", 2020, nil, fp(5)),
			gdpRec("BBB", 2020, nil, fp(1)),
			gdpRec("CCC", 2020, nil, fp(3)),
		},
		[]domain.InequalityRecord{
			giniRec("AAA", 2021, fp(30)),
			giniRec("BBB", 2021, fp(50)),
			giniRec("CCC", 2021, fp(40)),
		},
		nil, nil,
	)

	res, err := GrowthVsInequality(ds)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "AAA", res.Rows[0][0])
}
