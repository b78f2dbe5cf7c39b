package domain

import "sort"

// Dataset is a fully-loaded, immutable snapshot of the five indicator
// tables. Fact slices grouped per country are sorted by year ascending.
// Reports treat the snapshot as read-only.
type Dataset struct {
	Countries []Country

	byCode         map[string]Country
	gdp            map[string][]GdpRecord
	inequality     map[string][]InequalityRecord
	poverty        map[string][]PovertyRecord
	tradeEducation map[string][]TradeEducationRecord

	// Orphans lists fact rows whose country_code has no metadata row.
	// They are excluded from every per-country accessor.
	Orphans []string
}

// NewDataset builds a snapshot from raw table contents. Fact rows that
// reference an unknown country are dropped from the grouped views and
// recorded in Orphans, so a loader bug degrades a report instead of
// crashing it.
func NewDataset(
	countries []Country,
	gdp []GdpRecord,
	inequality []InequalityRecord,
	poverty []PovertyRecord,
	tradeEducation []TradeEducationRecord,
) *Dataset {
	ds := &Dataset{
		Countries:      countries,
		byCode:         make(map[string]Country, len(countries)),
		gdp:            make(map[string][]GdpRecord),
		inequality:     make(map[string][]InequalityRecord),
		poverty:        make(map[string][]PovertyRecord),
		tradeEducation: make(map[string][]TradeEducationRecord),
	}
	sort.Slice(ds.Countries, func(i, j int) bool { return ds.Countries[i].Code < ds.Countries[j].Code })
	for _, c := range ds.Countries {
		ds.byCode[c.Code] = c
	}

	orphans := map[string]bool{}
	for _, r := range gdp {
		if _, ok := ds.byCode[r.CountryCode]; !ok {
			orphans[r.CountryCode] = true
			continue
		}
		ds.gdp[r.CountryCode] = append(ds.gdp[r.CountryCode], r)
	}
	for _, r := range inequality {
		if _, ok := ds.byCode[r.CountryCode]; !ok {
			orphans[r.CountryCode] = true
			continue
		}
		ds.inequality[r.CountryCode] = append(ds.inequality[r.CountryCode], r)
	}
	for _, r := range poverty {
		if _, ok := ds.byCode[r.CountryCode]; !ok {
			orphans[r.CountryCode] = true
			continue
		}
		ds.poverty[r.CountryCode] = append(ds.poverty[r.CountryCode], r)
	}
	for _, r := range tradeEducation {
		if _, ok := ds.byCode[r.CountryCode]; !ok {
			orphans[r.CountryCode] = true
			continue
		}
		ds.tradeEducation[r.CountryCode] = append(ds.tradeEducation[r.CountryCode], r)
	}

	for code := range ds.gdp {
		recs := ds.gdp[code]
		sort.Slice(recs, func(i, j int) bool { return recs[i].Year < recs[j].Year })
	}
	for code := range ds.inequality {
		recs := ds.inequality[code]
		sort.Slice(recs, func(i, j int) bool { return recs[i].Year < recs[j].Year })
	}
	for code := range ds.poverty {
		recs := ds.poverty[code]
		sort.Slice(recs, func(i, j int) bool { return recs[i].Year < recs[j].Year })
	}
	for code := range ds.tradeEducation {
		recs := ds.tradeEducation[code]
		sort.Slice(recs, func(i, j int) bool { return recs[i].Year < recs[j].Year })
	}

	for code := range orphans {
		ds.Orphans = append(ds.Orphans, code)
	}
	sort.Strings(ds.Orphans)

	return ds
}

// Country returns the metadata row for a country code.
func (d *Dataset) Country(code string) (Country, bool) {
	c, ok := d.byCode[code]
	return c, ok
}

// Gdp returns the GDP records for a country, sorted by year.
func (d *Dataset) Gdp(code string) []GdpRecord { return d.gdp[code] }

// Inequality returns the inequality records for a country, sorted by year.
func (d *Dataset) Inequality(code string) []InequalityRecord { return d.inequality[code] }

// Poverty returns the poverty records for a country, sorted by year.
func (d *Dataset) Poverty(code string) []PovertyRecord { return d.poverty[code] }

// TradeEducation returns the trade/education records for a country, sorted by year.
func (d *Dataset) TradeEducation(code string) []TradeEducationRecord {
	return d.tradeEducation[code]
}

// LatestGdpYear returns the most recent year present anywhere in gdp_data,
// or false when the table is empty.
func (d *Dataset) LatestGdpYear() (int, bool) {
	year, found := 0, false
	for _, recs := range d.gdp {
		for _, r := range recs {
			if !found || r.Year > year {
				year, found = r.Year, true
			}
		}
	}
	return year, found
}

// LatestInequalityYear returns the most recent year present anywhere in
// inequality_metrics, or false when the table is empty.
func (d *Dataset) LatestInequalityYear() (int, bool) {
	year, found := 0, false
	for _, recs := range d.inequality {
		for _, r := range recs {
			if !found || r.Year > year {
				year, found = r.Year, true
			}
		}
	}
	return year, found
}
