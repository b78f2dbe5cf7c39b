package report

import (
	"sort"

	"inequality-analytics/internal/domain"
)

// PovertyReduction tracks the change in the $3.65/day poverty headcount
// from 2015 to 2023 per country. Both years must be present and the 2015
// base non-zero; sorted by percent reduction descending.
func PovertyReduction(ds *domain.Dataset) (*Result, error) {
	res := &Result{Columns: []string{
		"country_code", "country_name", "income_group",
		"poverty_365_2015", "poverty_365_2023", "change_points", "reduction_pct",
	}}

	type row struct {
		c            domain.Country
		start, end   float64
		reductionPct float64
	}
	var rows []row
	for _, c := range ds.Countries {
		start, ok := deref(poverty365At(ds, c.Code, baselineYear))
		if !ok || start == 0 {
			continue
		}
		end, ok := deref(poverty365At(ds, c.Code, referenceYear))
		if !ok {
			continue
		}
		rows = append(rows, row{
			c:            c,
			start:        start,
			end:          end,
			reductionPct: (start - end) / start * 100,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].reductionPct != rows[j].reductionPct {
			return rows[i].reductionPct > rows[j].reductionPct
		}
		return rows[i].c.Code < rows[j].c.Code
	})

	for _, r := range rows {
		res.Rows = append(res.Rows, []interface{}{
			r.c.Code, r.c.Name, r.c.IncomeGroup,
			r.start, r.end, r.end - r.start, r.reductionPct,
		})
	}
	return res, nil
}
