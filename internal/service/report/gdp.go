package report

import (
	"math"
	"sort"

	"inequality-analytics/internal/domain"
)

// GdpGrowthYoY computes year-over-year GDP-per-capita growth per country
// from 2020 onward. The lag is gap-tolerant: "previous" is the prior record
// present for the country, not calendar year minus one. Rows missing either
// value, or with a zero base, are excluded.
func GdpGrowthYoY(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"country_code", "country_name", "year", "prev_year",
		"gdp_per_capita", "prev_gdp_per_capita", "yoy_growth_pct",
	}}

	for _, c := range ds.Countries {
		recs := ds.Gdp(c.Code)
		for i := 1; i < len(recs); i++ {
			cur, prev := recs[i], recs[i-1]
			if cur.Year < 2020 {
				continue
			}
			curVal, ok := deref(cur.GdpPerCapita)
			if !ok {
				continue
			}
			prevVal, ok := deref(prev.GdpPerCapita)
			if !ok || prevVal == 0 {
				continue
			}
			growth := (curVal - prevVal) / prevVal * 100
			res.Rows = append(res.Rows, []interface{}{
				c.Code, c.Name, cur.Year, prev.Year, curVal, prevVal, growth,
			})
		}
	}
	return res, nil
}

// Recovery categories for GDP at 2023 relative to the 2019 baseline.
const (
	RecoveryStrong   = "Strong Recovery"
	RecoveryModerate = "Moderate Recovery"
	RecoveryStagnant = "Stagnant"
	RecoveryDecline  = "Decline"
)

// classifyRecovery maps a percent change vs. the pre-pandemic baseline to a
// recovery category.
func classifyRecovery(changePct float64) string {
	switch {
	case changePct >= 5:
		return RecoveryStrong
	case changePct >= 0:
		return RecoveryModerate
	case changePct >= -5:
		return RecoveryStagnant
	default:
		return RecoveryDecline
	}
}

// PandemicRecovery classifies each country's GDP at 2023 against its 2019
// baseline. Countries missing either year, or with a zero baseline, are
// excluded.
func PandemicRecovery(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"country_code", "country_name", "region",
		"gdp_2019", "gdp_2023", "change_pct", "recovery_category",
	}}

	type row struct {
		c         domain.Country
		base, now float64
		changePct float64
	}
	var rows []row
	for _, c := range ds.Countries {
		base, ok := deref(gdpAt(ds, c.Code, pandemicBase))
		if !ok || base == 0 {
			continue
		}
		now, ok := deref(gdpAt(ds, c.Code, referenceYear))
		if !ok {
			continue
		}
		rows = append(rows, row{c: c, base: base, now: now, changePct: (now - base) / base * 100})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].changePct != rows[j].changePct {
			return rows[i].changePct > rows[j].changePct
		}
		return rows[i].c.Code < rows[j].c.Code
	})

	for _, r := range rows {
		res.Rows = append(res.Rows, []interface{}{
			r.c.Code, r.c.Name, r.c.Region, r.base, r.now, r.changePct, classifyRecovery(r.changePct),
		})
	}
	return res, nil
}

// GdpConvergence ranks countries by compound annual growth rate over the
// 2015-2023 span. Countries with 2015 GDP at or below 500 are excluded to
// avoid near-zero-base distortion; the income tier reflects the 2015 level.
// Capped at 40 rows.
func GdpConvergence(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"country_code", "country_name", "income_tier_2015",
		"gdp_2015", "gdp_2023", "cagr_pct",
	}}

	type row struct {
		c          domain.Country
		start, end float64
		cagr       float64
		tier       string
	}
	var rows []row
	for _, c := range ds.Countries {
		start, ok := deref(gdpAt(ds, c.Code, baselineYear))
		if !ok || start <= 500 {
			continue
		}
		end, ok := deref(gdpAt(ds, c.Code, referenceYear))
		if !ok {
			continue
		}
		cagr := (math.Pow(end/start, 1.0/cagrSpanYears) - 1) * 100

		tier := "High"
		switch {
		case start < 5000:
			tier = "Low"
		case start < 15000:
			tier = "Middle"
		}
		rows = append(rows, row{c: c, start: start, end: end, cagr: cagr, tier: tier})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].cagr != rows[j].cagr {
			return rows[i].cagr > rows[j].cagr
		}
		return rows[i].c.Code < rows[j].c.Code
	})
	if len(rows) > 40 {
		rows = rows[:40]
	}

	for _, r := range rows {
		res.Rows = append(res.Rows, []interface{}{
			r.c.Code, r.c.Name, r.tier, r.start, r.end, r.cagr,
		})
	}
	return res, nil
}

// GlobalComparison classifies each country against the global mean GDP and
// global mean gini, both computed over countries that have both values at
// the latest GDP year. The two classifications are independent.
func GlobalComparison(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"country_code", "country_name", "gdp_per_capita", "gdp_vs_global",
		"gini_coefficient", "gini_vs_global",
	}}

	year, ok := ds.LatestGdpYear()
	if !ok {
		return res, nil
	}

	type row struct {
		c         domain.Country
		gdp, gini float64
	}
	var rows []row
	var gdps, ginis []float64
	for _, c := range ds.Countries {
		gdp, ok := deref(gdpAt(ds, c.Code, year))
		if !ok {
			continue
		}
		gini, ok := deref(giniAt(ds, c.Code, year))
		if !ok {
			continue
		}
		rows = append(rows, row{c: c, gdp: gdp, gini: gini})
		gdps = append(gdps, gdp)
		ginis = append(ginis, gini)
	}

	avgGdp, ok := mean(gdps)
	if !ok {
		return res, nil
	}
	avgGini, _ := mean(ginis)

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].gdp != rows[j].gdp {
			return rows[i].gdp > rows[j].gdp
		}
		return rows[i].c.Code < rows[j].c.Code
	})

	for _, r := range rows {
		gdpSide := "Below Average"
		if r.gdp > avgGdp {
			gdpSide = "Above Average"
		}
		giniSide := "Below Average"
		if r.gini > avgGini {
			giniSide = "Above Average"
		}
		res.Rows = append(res.Rows, []interface{}{
			r.c.Code, r.c.Name, r.gdp, gdpSide, r.gini, giniSide,
		})
	}
	return res, nil
}

// GrowthVsInequality selects countries whose mean GDP growth over 2018-2023
// is strictly above the cross-country average while their latest gini is
// strictly below it. Both averages are computed over the same derived
// per-country table being filtered — preserved as-is from the source
// analysis.
func GrowthVsInequality(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"country_code", "country_name", "region", "avg_growth_2018_2023", "latest_gini",
	}}

	type row struct {
		c            domain.Country
		growth, gini float64
	}
	var rows []row
	var growths, ginis []float64
	for _, c := range ds.Countries {
		var vals []float64
		for _, rec := range ds.Gdp(c.Code) {
			if rec.Year < 2018 || rec.Year > 2023 {
				continue
			}
			if v, ok := deref(rec.GrowthPct); ok {
				vals = append(vals, v)
			}
		}
		avgGrowth, ok := mean(vals)
		if !ok {
			continue
		}
		gini, _, ok := latestGini(ds, c.Code)
		if !ok {
			continue
		}
		rows = append(rows, row{c: c, growth: avgGrowth, gini: gini})
		growths = append(growths, avgGrowth)
		ginis = append(ginis, gini)
	}

	growthBar, ok := mean(growths)
	if !ok {
		return res, nil
	}
	giniBar, _ := mean(ginis)

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].growth != rows[j].growth {
			return rows[i].growth > rows[j].growth
		}
		return rows[i].c.Code < rows[j].c.Code
	})

	for _, r := range rows {
		if r.growth > growthBar && r.gini < giniBar {
			res.Rows = append(res.Rows, []interface{}{
				r.c.Code, r.c.Name, r.c.Region, r.growth, r.gini,
			})
		}
	}
	return res, nil
}
