// Package domain defines the indicator entities and the immutable dataset
// snapshot the analytical reports run against.
package domain

// Year bounds enforced by the schema for all fact tables.
const (
	MinYear = 1990
	MaxYear = 2030
)

// Country is one row of country_metadata. Population is nullable — the
// loader ships it as NULL and reports must treat it as absent, not zero.
type Country struct {
	Code        string
	Name        string
	Region      string
	IncomeGroup string
	Population  *float64
}

// GdpRecord is one row of gdp_data, keyed by (country_code, year).
type GdpRecord struct {
	CountryCode  string
	Year         int
	GdpPerCapita *float64 // current USD
	GdpTotal     *float64 // current USD
	GrowthPct    *float64 // annual %
}

// InequalityRecord is one row of inequality_metrics.
type InequalityRecord struct {
	CountryCode          string
	Year                 int
	Gini                 *float64 // 0..100
	IncomeShareLowest20  *float64
	IncomeShareHighest20 *float64
	PalmaRatio           *float64
}

// PovertyRecord is one row of poverty_indicators. Headcounts are the share
// of population below the $2.15, $3.65 and $6.85/day lines.
type PovertyRecord struct {
	CountryCode  string
	Year         int
	Headcount215 *float64
	Headcount365 *float64
	Headcount685 *float64
	PovertyGap   *float64
}

// TradeEducationRecord is one row of trade_education.
type TradeEducationRecord struct {
	CountryCode         string
	Year                int
	TradePctGdp         *float64
	SecondaryEnrollment *float64
	TertiaryEnrollment  *float64
	EduExpenditurePct   *float64
}
