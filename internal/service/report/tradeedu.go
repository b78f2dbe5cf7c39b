package report

import (
	"math"
	"sort"

	"inequality-analytics/internal/domain"
)

// Quadrant labels for the trade/inequality change report. A delta of
// exactly zero counts as the "Down" side.
const (
	QuadrantUpUp     = "Trade Up, Inequality Up"
	QuadrantUpDown   = "Trade Up, Inequality Down"
	QuadrantDownUp   = "Trade Down, Inequality Up"
	QuadrantDownDown = "Trade Down, Inequality Down"
)

func classifyQuadrant(tradeDelta, giniDelta float64) string {
	switch {
	case tradeDelta > 0 && giniDelta > 0:
		return QuadrantUpUp
	case tradeDelta > 0:
		return QuadrantUpDown
	case giniDelta > 0:
		return QuadrantDownUp
	default:
		return QuadrantDownDown
	}
}

// TradeInequalityQuadrants classifies countries by the sign of their trade
// openness change and gini change over 2015-2023. All four source values
// must be present. Sorted by absolute gini change descending, capped at 30.
func TradeInequalityQuadrants(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"country_code", "country_name",
		"trade_change_2015_2023", "gini_change_2015_2023", "quadrant",
	}}

	type row struct {
		c                     domain.Country
		tradeDelta, giniDelta float64
	}
	var rows []row
	for _, c := range ds.Countries {
		trade0, ok := deref(tradeAt(ds, c.Code, baselineYear))
		if !ok {
			continue
		}
		trade1, ok := deref(tradeAt(ds, c.Code, referenceYear))
		if !ok {
			continue
		}
		gini0, ok := deref(giniAt(ds, c.Code, baselineYear))
		if !ok {
			continue
		}
		gini1, ok := deref(giniAt(ds, c.Code, referenceYear))
		if !ok {
			continue
		}
		rows = append(rows, row{c: c, tradeDelta: trade1 - trade0, giniDelta: gini1 - gini0})
	}

	sort.Slice(rows, func(i, j int) bool {
		ai, aj := math.Abs(rows[i].giniDelta), math.Abs(rows[j].giniDelta)
		if ai != aj {
			return ai > aj
		}
		return rows[i].c.Code < rows[j].c.Code
	})
	if len(rows) > 30 {
		rows = rows[:30]
	}

	for _, r := range rows {
		res.Rows = append(res.Rows, []interface{}{
			r.c.Code, r.c.Name, r.tradeDelta, r.giniDelta,
			classifyQuadrant(r.tradeDelta, r.giniDelta),
		})
	}
	return res, nil
}

// EducationSpendingOutcomes buckets countries into four balanced groups by
// mean education expenditure ascending (quartile 1 = lowest spenders) and
// reports mean spending, gini, poverty and secondary enrollment per bucket,
// all null-excluded.
func EducationSpendingOutcomes(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"spending_quartile", "country_count", "avg_education_spending_pct",
		"avg_gini", "avg_poverty_365", "avg_secondary_enrollment",
	}}

	type entry struct {
		c        domain.Country
		spending float64
		gini     *float64
		poverty  *float64
		enroll   *float64
	}
	var entries []entry
	for _, c := range ds.Countries {
		var vals []float64
		for _, rec := range ds.TradeEducation(c.Code) {
			if v, ok := deref(rec.EduExpenditurePct); ok {
				vals = append(vals, v)
			}
		}
		spending, ok := mean(vals)
		if !ok {
			continue
		}
		e := entry{c: c, spending: spending}
		if v, _, ok := latestGini(ds, c.Code); ok {
			e.gini = &v
		}
		if v, ok := latestPoverty365(ds, c.Code); ok {
			e.poverty = &v
		}
		if v, ok := latestSecondaryEnrollment(ds, c.Code); ok {
			e.enroll = &v
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].spending != entries[j].spending {
			return entries[i].spending < entries[j].spending
		}
		return entries[i].c.Code < entries[j].c.Code
	})
	buckets := ntile(4, len(entries))

	type agg struct {
		count    int
		spending []float64
		gini     []float64
		poverty  []float64
		enroll   []float64
	}
	byBucket := make(map[int]*agg)
	for i, e := range entries {
		b := buckets[i]
		a := byBucket[b]
		if a == nil {
			a = &agg{}
			byBucket[b] = a
		}
		a.count++
		a.spending = append(a.spending, e.spending)
		if e.gini != nil {
			a.gini = append(a.gini, *e.gini)
		}
		if e.poverty != nil {
			a.poverty = append(a.poverty, *e.poverty)
		}
		if e.enroll != nil {
			a.enroll = append(a.enroll, *e.enroll)
		}
	}

	for b := 1; b <= 4; b++ {
		a := byBucket[b]
		if a == nil {
			continue
		}
		avgSpending, _ := mean(a.spending)
		row := []interface{}{b, a.count, avgSpending}
		for _, vals := range [][]float64{a.gini, a.poverty, a.enroll} {
			if avg, ok := mean(vals); ok {
				row = append(row, avg)
			} else {
				row = append(row, nil)
			}
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

// TradeGiniCorrelation reports the per-region Pearson correlation between
// trade openness and gini over all (country, year) observations with both
// values present. Regions with fewer than three observations, or with a
// degenerate (zero-variance) sample, are omitted.
func TradeGiniCorrelation(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"region", "observations", "trade_gini_correlation",
	}}

	type sample struct {
		trades, ginis []float64
	}
	samples := make(map[string]*sample)
	for _, c := range ds.Countries {
		for _, rec := range ds.Inequality(c.Code) {
			gini, ok := deref(rec.Gini)
			if !ok {
				continue
			}
			trade, ok := deref(tradeAt(ds, c.Code, rec.Year))
			if !ok {
				continue
			}
			s := samples[c.Region]
			if s == nil {
				s = &sample{}
				samples[c.Region] = s
			}
			s.trades = append(s.trades, trade)
			s.ginis = append(s.ginis, gini)
		}
	}

	var regions []string
	for r := range samples {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	for _, region := range regions {
		s := samples[region]
		if len(s.trades) < 3 {
			continue
		}
		r, ok := correlation(s.trades, s.ginis)
		if !ok || math.IsNaN(r) {
			continue
		}
		res.Rows = append(res.Rows, []interface{}{region, len(s.trades), r})
	}
	return res, nil
}
