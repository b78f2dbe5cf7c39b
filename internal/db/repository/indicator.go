// Package repository implements persistence for the indicator store.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"inequality-analytics/internal/domain"
)

// IndicatorRepo writes indicator rows. Nil metric pointers map to NULL —
// absent values must stay absent, never become zero.
type IndicatorRepo struct {
	db *sql.DB
}

// NewIndicatorRepo creates a new IndicatorRepo.
func NewIndicatorRepo(db *sql.DB) *IndicatorRepo {
	return &IndicatorRepo{db: db}
}

// InsertCountry inserts one country_metadata row.
func (r *IndicatorRepo) InsertCountry(ctx context.Context, c *domain.Country) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO country_metadata (country_code, country_name, region, income_group, population_2023)
		 VALUES (?, ?, ?, ?, ?)`,
		c.Code, c.Name, c.Region, c.IncomeGroup, c.Population)
	if err != nil {
		return fmt.Errorf("insert country %s: %w", c.Code, err)
	}
	return nil
}

// InsertGdp inserts one gdp_data row.
func (r *IndicatorRepo) InsertGdp(ctx context.Context, rec *domain.GdpRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gdp_data (country_code, year, gdp_per_capita_current_usd, gdp_total_current_usd, gdp_growth_annual_pct)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.CountryCode, rec.Year, rec.GdpPerCapita, rec.GdpTotal, rec.GrowthPct)
	if err != nil {
		return fmt.Errorf("insert gdp %s/%d: %w", rec.CountryCode, rec.Year, err)
	}
	return nil
}

// InsertInequality inserts one inequality_metrics row.
func (r *IndicatorRepo) InsertInequality(ctx context.Context, rec *domain.InequalityRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO inequality_metrics (country_code, year, gini_coefficient, income_share_lowest_20pct, income_share_highest_20pct, palma_ratio)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.CountryCode, rec.Year, rec.Gini, rec.IncomeShareLowest20, rec.IncomeShareHighest20, rec.PalmaRatio)
	if err != nil {
		return fmt.Errorf("insert inequality %s/%d: %w", rec.CountryCode, rec.Year, err)
	}
	return nil
}

// InsertPoverty inserts one poverty_indicators row.
func (r *IndicatorRepo) InsertPoverty(ctx context.Context, rec *domain.PovertyRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO poverty_indicators (country_code, year, poverty_headcount_215_pct, poverty_headcount_365_pct, poverty_headcount_685_pct, poverty_gap)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.CountryCode, rec.Year, rec.Headcount215, rec.Headcount365, rec.Headcount685, rec.PovertyGap)
	if err != nil {
		return fmt.Errorf("insert poverty %s/%d: %w", rec.CountryCode, rec.Year, err)
	}
	return nil
}

// InsertTradeEducation inserts one trade_education row.
func (r *IndicatorRepo) InsertTradeEducation(ctx context.Context, rec *domain.TradeEducationRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trade_education (country_code, year, trade_pct_gdp, secondary_enrollment_rate, tertiary_enrollment_rate, government_expenditure_education_pct)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.CountryCode, rec.Year, rec.TradePctGdp, rec.SecondaryEnrollment, rec.TertiaryEnrollment, rec.EduExpenditurePct)
	if err != nil {
		return fmt.Errorf("insert trade_education %s/%d: %w", rec.CountryCode, rec.Year, err)
	}
	return nil
}

// CountCountries returns the number of country_metadata rows.
func (r *IndicatorRepo) CountCountries(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM country_metadata`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count countries: %w", err)
	}
	return n, nil
}

// TableCounts returns row counts for all five indicator tables, keyed by
// table name.
func (r *IndicatorRepo) TableCounts(ctx context.Context) (map[string]int64, error) {
	tables := []string{
		"country_metadata",
		"gdp_data",
		"inequality_metrics",
		"poverty_indicators",
		"trade_education",
	}
	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		var n int64
		// Table names come from the fixed list above, not user input.
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
