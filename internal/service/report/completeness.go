package report

import (
	"sort"

	"inequality-analytics/internal/domain"
)

// aggregatesRegion is the World Bank pseudo-region for regional/global
// aggregate rows; it never describes a single country.
const aggregatesRegion = "Aggregates"

// DataCompleteness reports, per region, how many countries have GDP, gini
// and poverty data for 2023, as counts and percentages of the region's
// countries. The "Aggregates" pseudo-region is excluded.
func DataCompleteness(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"region", "country_count",
		"gdp_coverage", "gdp_coverage_pct",
		"gini_coverage", "gini_coverage_pct",
		"poverty_coverage", "poverty_coverage_pct",
	}}

	type agg struct {
		total, gdp, gini, poverty int
	}
	byRegion := make(map[string]*agg)
	for _, c := range ds.Countries {
		if c.Region == aggregatesRegion {
			continue
		}
		a := byRegion[c.Region]
		if a == nil {
			a = &agg{}
			byRegion[c.Region] = a
		}
		a.total++
		if gdpAt(ds, c.Code, referenceYear) != nil {
			a.gdp++
		}
		if giniAt(ds, c.Code, referenceYear) != nil {
			a.gini++
		}
		if poverty365At(ds, c.Code, referenceYear) != nil {
			a.poverty++
		}
	}

	var regions []string
	for r := range byRegion {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	for _, region := range regions {
		a := byRegion[region]
		if a.total == 0 {
			continue
		}
		pct := func(n int) float64 { return float64(n) / float64(a.total) * 100 }
		res.Rows = append(res.Rows, []interface{}{
			region, a.total,
			a.gdp, pct(a.gdp),
			a.gini, pct(a.gini),
			a.poverty, pct(a.poverty),
		})
	}
	return res, nil
}
