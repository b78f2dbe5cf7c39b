package report

import (
	"sort"

	"inequality-analytics/internal/domain"
)

// Composite index weights and substitution defaults. Missing poverty or
// income-share inputs are substituted, not dropped, so countries with
// partial data keep a score — at the cost of biasing those rows.
const (
	compositeGiniWeight    = 0.5
	compositePovertyWeight = 0.3
	compositeShareWeight   = 0.2

	defaultPovertyRate    = 0
	defaultIncomeShareLow = 10
)

// shareScore maps the bottom-20% income share onto a 0-100
// inequality-direction scale: a smaller share scores higher.
func shareScore(share float64) float64 {
	return (defaultIncomeShareLow - share) * 10
}

// CompositeInequalityIndex builds a weighted composite of min-max
// normalized gini, the $3.65 poverty headcount (already 0-100) and the
// transformed bottom-20% income share at 2023, then assigns balanced
// quintiles over the composite ascending (quintile 1 = least unequal).
// Countries need a 2023 gini to qualify.
func CompositeInequalityIndex(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"country_code", "country_name", "gini_coefficient", "gini_normalized",
		"poverty_headcount_365", "income_share_lowest_20", "composite_score", "quintile",
	}}

	type row struct {
		c         domain.Country
		gini      float64
		giniNorm  float64
		poverty   *float64
		share     *float64
		composite float64
		quintile  int
	}
	var rows []row
	for _, c := range ds.Countries {
		gini, ok := deref(giniAt(ds, c.Code, referenceYear))
		if !ok {
			continue
		}
		rows = append(rows, row{
			c:       c,
			gini:    gini,
			poverty: poverty365At(ds, c.Code, referenceYear),
			share:   incomeShareLow20At(ds, c.Code, referenceYear),
		})
	}
	if len(rows) == 0 {
		return res, nil
	}

	lo, hi := rows[0].gini, rows[0].gini
	for _, r := range rows[1:] {
		if r.gini < lo {
			lo = r.gini
		}
		if r.gini > hi {
			hi = r.gini
		}
	}

	for i := range rows {
		r := &rows[i]
		r.giniNorm = minMaxScale(r.gini, lo, hi)

		poverty := float64(defaultPovertyRate)
		if v, ok := deref(r.poverty); ok {
			poverty = v
		}
		share := float64(defaultIncomeShareLow)
		if v, ok := deref(r.share); ok {
			share = v
		}

		r.composite = compositeGiniWeight*r.giniNorm +
			compositePovertyWeight*poverty +
			compositeShareWeight*shareScore(share)
	}

	// Quintiles over the composite ascending.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].composite != rows[j].composite {
			return rows[i].composite < rows[j].composite
		}
		return rows[i].c.Code < rows[j].c.Code
	})
	buckets := ntile(5, len(rows))
	for i := range rows {
		rows[i].quintile = buckets[i]
	}

	// Most unequal first in the output.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].composite != rows[j].composite {
			return rows[i].composite > rows[j].composite
		}
		return rows[i].c.Code < rows[j].c.Code
	})

	for _, r := range rows {
		res.Rows = append(res.Rows, []interface{}{
			r.c.Code, r.c.Name, r.gini, r.giniNorm,
			cell(r.poverty), cell(r.share), r.composite, r.quintile,
		})
	}
	return res, nil
}
