package report

import "inequality-analytics/internal/domain"

// Report is one entry of the analytical catalogue.
type Report struct {
	Slug  string
	Title string
	Run   func(*domain.Dataset) (*Result, error)
}

// Catalog returns the full report catalogue in presentation order. The
// order is fixed so exported filenames stay stable.
func Catalog() []Report {
	return []Report{
		{"top_inequality", "Top 10 most unequal countries (latest survey year)", TopInequality},
		{"gdp_growth_yoy", "Year-over-year GDP growth since 2020", GdpGrowthYoY},
		{"regional_gini_trend", "Regional gini summary by survey year", RegionalGiniTrend},
		{"growth_vs_inequality", "High-growth, low-inequality countries", GrowthVsInequality},
		{"income_group_quartiles", "GDP quartiles and inequality ranks by income group", IncomeGroupQuartiles},
		{"gini_pivot", "Gini by survey year, pivoted per country", GiniPivot},
		{"global_comparison", "Countries vs. global average GDP and gini", GlobalComparison},
		{"trade_inequality_quadrants", "Trade vs. inequality change quadrants", TradeInequalityQuadrants},
		{"pandemic_recovery", "Pandemic recovery classification (2019 vs 2023)", PandemicRecovery},
		{"gdp_convergence", "GDP convergence: CAGR 2015-2023", GdpConvergence},
		{"composite_inequality_index", "Composite inequality index (2023)", CompositeInequalityIndex},
		{"education_spending_outcomes", "Outcomes by education spending quartile", EducationSpendingOutcomes},
		{"data_completeness", "Indicator coverage by region (2023)", DataCompleteness},
		{"poverty_reduction", "Poverty headcount reduction 2015-2023", PovertyReduction},
		{"trade_gini_correlation", "Trade openness vs gini correlation by region", TradeGiniCorrelation},
	}
}

// Get returns the catalogue entry for a slug.
func Get(slug string) (Report, error) {
	for _, r := range Catalog() {
		if r.Slug == slug {
			return r, nil
		}
	}
	return Report{}, domain.ErrNotFound("unknown report %q", slug)
}
