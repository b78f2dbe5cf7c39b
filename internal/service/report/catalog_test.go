package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inequality-analytics/internal/domain"
)

func TestCatalog_FifteenUniqueSlugs(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 15)

	seen := map[string]bool{}
	for _, r := range catalog {
		assert.NotEmpty(t, r.Slug)
		assert.NotEmpty(t, r.Title)
		assert.NotNil(t, r.Run)
		assert.False(t, seen[r.Slug], "duplicate slug %s", r.Slug)
		seen[r.Slug] = true
	}
}

func TestGet(t *testing.T) {
	r, err := Get("top_inequality")
	require.NoError(t, err)
	assert.Equal(t, "top_inequality", r.Slug)

	_, err = Get("no_such_report")
	require.Error(t, err)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

// fixtureDataset builds a small fully-populated dataset exercising every
// report in the catalogue.
func fixtureDataset() *domain.Dataset {
	countries := []domain.Country{
		country("AAA", "Alpha", "East Asia & Pacific", "Upper middle income"),
		country("BBB", "Beta", "East Asia & Pacific", "Lower middle income"),
		country("CCC", "Gamma", "Europe & Central Asia", "High income"),
		country("DDD", "Delta", "Europe & Central Asia", "High income"),
		country("EEE", "Epsilon", "Sub-Saharan Africa", "Low income"),
		country("FFF", "Zeta", "Sub-Saharan Africa", "Low income"),
	}

	var gdp []domain.GdpRecord
	var trade []domain.TradeEducationRecord
	base := map[string]float64{"AAA": 12000, "BBB": 4000, "CCC": 52000, "DDD": 48000, "EEE": 900, "FFF": 1100}
	for code, b := range base {
		for year := 2015; year <= 2023; year++ {
			dy := float64(year - 2015)
			growth := 2 + b/20000
			if year == 2020 {
				growth = -4.0
			}
			gdp = append(gdp, domain.GdpRecord{
				CountryCode:  code,
				Year:         year,
				GdpPerCapita: fp(b * (1 + 0.03*dy)),
				GrowthPct:    fp(growth),
			})
			trade = append(trade, domain.TradeEducationRecord{
				CountryCode:         code,
				Year:                year,
				TradePctGdp:         fp(80 + dy + b/10000),
				SecondaryEnrollment: fp(70 + dy),
				TertiaryEnrollment:  fp(30 + dy),
				EduExpenditurePct:   fp(3 + b/20000),
			})
		}
	}

	var ineq []domain.InequalityRecord
	var poverty []domain.PovertyRecord
	gini := map[string]float64{"AAA": 42, "BBB": 38, "CCC": 28, "DDD": 31, "EEE": 55, "FFF": 48}
	for code, g := range gini {
		for _, year := range []int{2015, 2017, 2019, 2021, 2023} {
			dy := float64(year - 2015)
			ineq = append(ineq, domain.InequalityRecord{
				CountryCode:          code,
				Year:                 year,
				Gini:                 fp(g - dy*0.2),
				IncomeShareLowest20:  fp(6),
				IncomeShareHighest20: fp(45),
				PalmaRatio:           fp(3.75),
			})
			poverty = append(poverty, domain.PovertyRecord{
				CountryCode:  code,
				Year:         year,
				Headcount215: fp(g/2 - dy),
				Headcount365: fp(g - dy),
				Headcount685: fp(g + 10 - dy),
			})
		}
	}

	return domain.NewDataset(countries, gdp, ineq, poverty, trade)
}

func TestCatalog_DeterministicAcrossRuns(t *testing.T) {
	ds := fixtureDataset()

	for _, rep := range Catalog() {
		first, err := rep.Run(ds)
		require.NoError(t, err, rep.Slug)
		second, err := rep.Run(ds)
		require.NoError(t, err, rep.Slug)
		assert.Equal(t, first, second, "report %s not deterministic", rep.Slug)
	}
}

func TestCatalog_AllReportsProduceRows(t *testing.T) {
	ds := fixtureDataset()

	for _, rep := range Catalog() {
		res, err := rep.Run(ds)
		require.NoError(t, err, rep.Slug)
		assert.NotEmpty(t, res.Columns, rep.Slug)
		assert.NotEmpty(t, res.Rows, "report %s produced no rows", rep.Slug)
	}
}

func TestCatalog_EmptyDatasetDoesNotFail(t *testing.T) {
	ds := domain.NewDataset(nil, nil, nil, nil, nil)

	for _, rep := range Catalog() {
		res, err := rep.Run(ds)
		require.NoError(t, err, rep.Slug)
		assert.NotEmpty(t, res.Columns, rep.Slug)
		assert.Empty(t, res.Rows, rep.Slug)
	}
}
