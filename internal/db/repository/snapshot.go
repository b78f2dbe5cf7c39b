package repository

import (
	"context"
	"database/sql"
	"fmt"

	"inequality-analytics/internal/domain"
)

// SnapshotRepo reads the full indicator dataset into memory. The analytical
// layer never queries the store row-by-row — it consumes one immutable
// snapshot per run.
type SnapshotRepo struct {
	db *sql.DB
}

// NewSnapshotRepo creates a new SnapshotRepo.
func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Load reads all five tables and assembles a domain.Dataset.
func (r *SnapshotRepo) Load(ctx context.Context) (*domain.Dataset, error) {
	countries, err := r.loadCountries(ctx)
	if err != nil {
		return nil, err
	}
	gdp, err := r.loadGdp(ctx)
	if err != nil {
		return nil, err
	}
	inequality, err := r.loadInequality(ctx)
	if err != nil {
		return nil, err
	}
	poverty, err := r.loadPoverty(ctx)
	if err != nil {
		return nil, err
	}
	tradeEdu, err := r.loadTradeEducation(ctx)
	if err != nil {
		return nil, err
	}

	return domain.NewDataset(countries, gdp, inequality, poverty, tradeEdu), nil
}

func (r *SnapshotRepo) loadCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT country_code, country_name, region, income_group, population_2023
		 FROM country_metadata ORDER BY country_code`)
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Country
	for rows.Next() {
		var c domain.Country
		var pop sql.NullFloat64
		if err := rows.Scan(&c.Code, &c.Name, &c.Region, &c.IncomeGroup, &pop); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		c.Population = nullableFloat(pop)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadGdp(ctx context.Context) ([]domain.GdpRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT country_code, year, gdp_per_capita_current_usd, gdp_total_current_usd, gdp_growth_annual_pct
		 FROM gdp_data ORDER BY country_code, year`)
	if err != nil {
		return nil, fmt.Errorf("load gdp: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.GdpRecord
	for rows.Next() {
		var rec domain.GdpRecord
		var perCapita, total, growth sql.NullFloat64
		if err := rows.Scan(&rec.CountryCode, &rec.Year, &perCapita, &total, &growth); err != nil {
			return nil, fmt.Errorf("scan gdp: %w", err)
		}
		rec.GdpPerCapita = nullableFloat(perCapita)
		rec.GdpTotal = nullableFloat(total)
		rec.GrowthPct = nullableFloat(growth)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadInequality(ctx context.Context) ([]domain.InequalityRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT country_code, year, gini_coefficient, income_share_lowest_20pct, income_share_highest_20pct, palma_ratio
		 FROM inequality_metrics ORDER BY country_code, year`)
	if err != nil {
		return nil, fmt.Errorf("load inequality: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.InequalityRecord
	for rows.Next() {
		var rec domain.InequalityRecord
		var gini, low20, high20, palma sql.NullFloat64
		if err := rows.Scan(&rec.CountryCode, &rec.Year, &gini, &low20, &high20, &palma); err != nil {
			return nil, fmt.Errorf("scan inequality: %w", err)
		}
		rec.Gini = nullableFloat(gini)
		rec.IncomeShareLowest20 = nullableFloat(low20)
		rec.IncomeShareHighest20 = nullableFloat(high20)
		rec.PalmaRatio = nullableFloat(palma)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadPoverty(ctx context.Context) ([]domain.PovertyRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT country_code, year, poverty_headcount_215_pct, poverty_headcount_365_pct, poverty_headcount_685_pct, poverty_gap
		 FROM poverty_indicators ORDER BY country_code, year`)
	if err != nil {
		return nil, fmt.Errorf("load poverty: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.PovertyRecord
	for rows.Next() {
		var rec domain.PovertyRecord
		var h215, h365, h685, gap sql.NullFloat64
		if err := rows.Scan(&rec.CountryCode, &rec.Year, &h215, &h365, &h685, &gap); err != nil {
			return nil, fmt.Errorf("scan poverty: %w", err)
		}
		rec.Headcount215 = nullableFloat(h215)
		rec.Headcount365 = nullableFloat(h365)
		rec.Headcount685 = nullableFloat(h685)
		rec.PovertyGap = nullableFloat(gap)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadTradeEducation(ctx context.Context) ([]domain.TradeEducationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT country_code, year, trade_pct_gdp, secondary_enrollment_rate, tertiary_enrollment_rate, government_expenditure_education_pct
		 FROM trade_education ORDER BY country_code, year`)
	if err != nil {
		return nil, fmt.Errorf("load trade_education: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.TradeEducationRecord
	for rows.Next() {
		var rec domain.TradeEducationRecord
		var trade, sec, ter, exp sql.NullFloat64
		if err := rows.Scan(&rec.CountryCode, &rec.Year, &trade, &sec, &ter, &exp); err != nil {
			return nil, fmt.Errorf("scan trade_education: %w", err)
		}
		rec.TradePctGdp = nullableFloat(trade)
		rec.SecondaryEnrollment = nullableFloat(sec)
		rec.TertiaryEnrollment = nullableFloat(ter)
		rec.EduExpenditurePct = nullableFloat(exp)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
