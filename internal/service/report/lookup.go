package report

import "inequality-analytics/internal/domain"

// Fixed analysis years. The loader generates annual GDP and trade data for
// 2015-2023 and survey-year inequality/poverty data every two years.
const (
	baselineYear  = 2015
	referenceYear = 2023
	pandemicBase  = 2019
	cagrSpanYears = 8
)

// surveyYears are the inequality/poverty survey years used by the trend,
// pivot and completeness reports.
var surveyYears = []int{2015, 2017, 2019, 2021, 2023}

func gdpAt(ds *domain.Dataset, code string, year int) *float64 {
	for _, r := range ds.Gdp(code) {
		if r.Year == year {
			return r.GdpPerCapita
		}
	}
	return nil
}

func giniAt(ds *domain.Dataset, code string, year int) *float64 {
	for _, r := range ds.Inequality(code) {
		if r.Year == year {
			return r.Gini
		}
	}
	return nil
}

func incomeShareLow20At(ds *domain.Dataset, code string, year int) *float64 {
	for _, r := range ds.Inequality(code) {
		if r.Year == year {
			return r.IncomeShareLowest20
		}
	}
	return nil
}

func poverty365At(ds *domain.Dataset, code string, year int) *float64 {
	for _, r := range ds.Poverty(code) {
		if r.Year == year {
			return r.Headcount365
		}
	}
	return nil
}

func tradeAt(ds *domain.Dataset, code string, year int) *float64 {
	for _, r := range ds.TradeEducation(code) {
		if r.Year == year {
			return r.TradePctGdp
		}
	}
	return nil
}

// latestGini returns the most recent non-null gini for a country.
func latestGini(ds *domain.Dataset, code string) (float64, int, bool) {
	recs := ds.Inequality(code)
	for i := len(recs) - 1; i >= 0; i-- {
		if v, ok := deref(recs[i].Gini); ok {
			return v, recs[i].Year, true
		}
	}
	return 0, 0, false
}

// latestPoverty365 returns the most recent non-null $3.65 headcount.
func latestPoverty365(ds *domain.Dataset, code string) (float64, bool) {
	recs := ds.Poverty(code)
	for i := len(recs) - 1; i >= 0; i-- {
		if v, ok := deref(recs[i].Headcount365); ok {
			return v, true
		}
	}
	return 0, false
}

// latestSecondaryEnrollment returns the most recent non-null secondary
// enrollment rate.
func latestSecondaryEnrollment(ds *domain.Dataset, code string) (float64, bool) {
	recs := ds.TradeEducation(code)
	for i := len(recs) - 1; i >= 0; i-- {
		if v, ok := deref(recs[i].SecondaryEnrollment); ok {
			return v, true
		}
	}
	return 0, false
}
