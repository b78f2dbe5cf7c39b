package report

import (
	"math"
	"sort"

	"inequality-analytics/internal/domain"
)

// TopInequality ranks the ten most unequal countries at the most recent
// survey year present in inequality_metrics. Ties break on country code
// ascending so output is stable.
func TopInequality(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"country_code", "country_name", "region", "income_group", "year", "gini_coefficient",
	}}

	year, ok := ds.LatestInequalityYear()
	if !ok {
		return res, nil
	}

	type row struct {
		c    domain.Country
		gini float64
	}
	var rows []row
	for _, c := range ds.Countries {
		if g, ok := deref(giniAt(ds, c.Code, year)); ok {
			rows = append(rows, row{c: c, gini: g})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].gini != rows[j].gini {
			return rows[i].gini > rows[j].gini
		}
		return rows[i].c.Code < rows[j].c.Code
	})
	if len(rows) > 10 {
		rows = rows[:10]
	}

	for _, r := range rows {
		res.Rows = append(res.Rows, []interface{}{
			r.c.Code, r.c.Name, r.c.Region, r.c.IncomeGroup, year, r.gini,
		})
	}
	return res, nil
}

// RegionalGiniTrend aggregates gini by (region, survey year): observation
// count, average, min and max, with null ginis excluded. Region/year cells
// with no observations are omitted.
func RegionalGiniTrend(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"region", "year", "country_count", "avg_gini", "min_gini", "max_gini",
	}}

	type key struct {
		region string
		year   int
	}
	groups := make(map[key][]float64)
	regions := make(map[string]bool)

	for _, c := range ds.Countries {
		regions[c.Region] = true
		for _, year := range surveyYears {
			if g, ok := deref(giniAt(ds, c.Code, year)); ok {
				k := key{region: c.Region, year: year}
				groups[k] = append(groups[k], g)
			}
		}
	}

	var regionNames []string
	for r := range regions {
		regionNames = append(regionNames, r)
	}
	sort.Strings(regionNames)

	for _, region := range regionNames {
		for _, year := range surveyYears {
			vals := groups[key{region: region, year: year}]
			avg, ok := mean(vals)
			if !ok {
				continue
			}
			lo, hi := vals[0], vals[0]
			for _, v := range vals[1:] {
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
			res.Rows = append(res.Rows, []interface{}{
				region, year, len(vals), avg, lo, hi,
			})
		}
	}
	return res, nil
}

// GiniPivot produces one row per country with a gini column per survey year
// and the 2023-2015 change. Countries need at least three non-null survey
// values to appear; rows sort by absolute change descending with unknown
// changes last. Capped at 25 rows.
func GiniPivot(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"country_code", "country_name",
		"gini_2015", "gini_2017", "gini_2019", "gini_2021", "gini_2023",
		"change_2015_2023",
	}}

	type row struct {
		c     domain.Country
		gini  map[int]*float64
		delta *float64
	}
	var rows []row
	for _, c := range ds.Countries {
		byYear := make(map[int]*float64, len(surveyYears))
		nonNull := 0
		for _, year := range surveyYears {
			g := giniAt(ds, c.Code, year)
			byYear[year] = g
			if g != nil {
				nonNull++
			}
		}
		if nonNull < 3 {
			continue
		}
		r := row{c: c, gini: byYear}
		if start, ok := deref(byYear[baselineYear]); ok {
			if end, ok := deref(byYear[referenceYear]); ok {
				d := end - start
				r.delta = &d
			}
		}
		rows = append(rows, r)
	}

	sort.Slice(rows, func(i, j int) bool {
		di, dj := rows[i].delta, rows[j].delta
		switch {
		case di != nil && dj != nil:
			if math.Abs(*di) != math.Abs(*dj) {
				return math.Abs(*di) > math.Abs(*dj)
			}
		case di != nil:
			return true
		case dj != nil:
			return false
		}
		return rows[i].c.Code < rows[j].c.Code
	})
	if len(rows) > 25 {
		rows = rows[:25]
	}

	for _, r := range rows {
		out := []interface{}{r.c.Code, r.c.Name}
		for _, year := range surveyYears {
			out = append(out, cell(r.gini[year]))
		}
		out = append(out, cell(r.delta))
		res.Rows = append(res.Rows, out)
	}
	return res, nil
}

// IncomeGroupQuartiles partitions countries by income group, buckets them
// into GDP quartiles at the latest GDP year (quartile 1 = highest GDP) and
// independently ranks them by latest gini descending. The output is the
// union of the top GDP quartile and the top three inequality ranks per
// partition.
func IncomeGroupQuartiles(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"income_group", "country_code", "country_name",
		"gdp_per_capita", "gdp_quartile", "latest_gini", "inequality_rank",
	}}

	gdpYear, ok := ds.LatestGdpYear()
	if !ok {
		return res, nil
	}

	type entry struct {
		c        domain.Country
		gdp      *float64
		quartile *int
		gini     *float64
		rank     *int
	}

	partitions := make(map[string][]*entry)
	var groupNames []string
	for _, c := range ds.Countries {
		e := &entry{c: c, gdp: gdpAt(ds, c.Code, gdpYear)}
		if g, _, ok := latestGini(ds, c.Code); ok {
			e.gini = &g
		}
		if _, seen := partitions[c.IncomeGroup]; !seen {
			groupNames = append(groupNames, c.IncomeGroup)
		}
		partitions[c.IncomeGroup] = append(partitions[c.IncomeGroup], e)
	}
	sort.Strings(groupNames)

	for _, group := range groupNames {
		entries := partitions[group]

		// GDP quartiles over countries with a GDP value.
		var ranked []*entry
		for _, e := range entries {
			if e.gdp != nil {
				ranked = append(ranked, e)
			}
		}
		sort.Slice(ranked, func(i, j int) bool {
			if *ranked[i].gdp != *ranked[j].gdp {
				return *ranked[i].gdp > *ranked[j].gdp
			}
			return ranked[i].c.Code < ranked[j].c.Code
		})
		buckets := ntile(4, len(ranked))
		for i, e := range ranked {
			b := buckets[i]
			e.quartile = &b
		}

		// Independent inequality ranking over countries with a gini value.
		var byGini []*entry
		for _, e := range entries {
			if e.gini != nil {
				byGini = append(byGini, e)
			}
		}
		sort.Slice(byGini, func(i, j int) bool {
			if *byGini[i].gini != *byGini[j].gini {
				return *byGini[i].gini > *byGini[j].gini
			}
			return byGini[i].c.Code < byGini[j].c.Code
		})
		for i, e := range byGini {
			r := i + 1
			e.rank = &r
		}

		// Union: top GDP quartile OR top-3 inequality rank.
		var selected []*entry
		for _, e := range entries {
			topGdp := e.quartile != nil && *e.quartile == 1
			topGini := e.rank != nil && *e.rank <= 3
			if topGdp || topGini {
				selected = append(selected, e)
			}
		}
		sort.Slice(selected, func(i, j int) bool {
			gi, gj := selected[i].gdp, selected[j].gdp
			switch {
			case gi != nil && gj != nil && *gi != *gj:
				return *gi > *gj
			case gi != nil && gj == nil:
				return true
			case gi == nil && gj != nil:
				return false
			}
			return selected[i].c.Code < selected[j].c.Code
		})

		for _, e := range selected {
			row := []interface{}{group, e.c.Code, e.c.Name, cell(e.gdp)}
			if e.quartile != nil {
				row = append(row, *e.quartile)
			} else {
				row = append(row, nil)
			}
			row = append(row, cell(e.gini))
			if e.rank != nil {
				row = append(row, *e.rank)
			} else {
				row = append(row, nil)
			}
			res.Rows = append(res.Rows, row)
		}
	}
	return res, nil
}
