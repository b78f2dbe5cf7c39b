// Package seed loads the synthetic indicator dataset into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"inequality-analytics/internal/db/repository"
	"inequality-analytics/internal/domain"
)

// Seeder generates and loads the synthetic dataset. Generation is driven by
// a seeded PRNG so repeated runs against a fresh store produce identical
// data.
type Seeder struct {
	repo *repository.IndicatorRepo
	rng  *rand.Rand
	log  *slog.Logger
}

// New creates a Seeder with the given PRNG seed.
func New(repo *repository.IndicatorRepo, prngSeed int64, log *slog.Logger) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{
		repo: repo,
		rng:  rand.New(rand.NewSource(prngSeed)), //nolint:gosec // reproducible sample data, not crypto
		log:  log,
	}
}

// Run loads the full dataset. Idempotent — returns (false, nil) without
// touching the store when country_metadata already has rows.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	n, err := s.repo.CountCountries(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		s.log.Info("store already seeded", "countries", n)
		return false, nil
	}

	if err := s.loadCountries(ctx); err != nil {
		return false, fmt.Errorf("load country metadata: %w", err)
	}
	if err := s.loadGdp(ctx); err != nil {
		return false, fmt.Errorf("load gdp data: %w", err)
	}
	if err := s.loadInequality(ctx); err != nil {
		return false, fmt.Errorf("load inequality data: %w", err)
	}
	if err := s.loadPoverty(ctx); err != nil {
		return false, fmt.Errorf("load poverty data: %w", err)
	}
	if err := s.loadTradeEducation(ctx); err != nil {
		return false, fmt.Errorf("load trade/education data: %w", err)
	}

	return true, nil
}

func (s *Seeder) loadCountries(ctx context.Context) error {
	for _, spec := range countries {
		c := &domain.Country{
			Code:        spec.code,
			Name:        spec.name,
			Region:      spec.region,
			IncomeGroup: spec.incomeGroup,
			// Population is intentionally left NULL, matching the source
			// dataset's incomplete coverage.
		}
		if err := s.repo.InsertCountry(ctx, c); err != nil {
			return err
		}
	}
	s.log.Info("loaded country metadata", "rows", len(countries))
	return nil
}

func (s *Seeder) loadGdp(ctx context.Context) error {
	rows := 0
	for _, spec := range countries {
		bounds := gdpRanges[spec.incomeGroup]
		baseGdp := s.uniform(bounds[0], bounds[1])

		for year := firstYear; year <= lastYear; year++ {
			var growth float64
			switch spec.incomeGroup {
			case incomeHigh:
				growth = s.uniform(1, 3)
			case incomeUpperMiddle:
				growth = s.uniform(3, 7)
			case incomeLowerMiddle:
				growth = s.uniform(4, 8)
			default:
				growth = s.uniform(3, 6)
			}
			// COVID contraction.
			if year == 2020 {
				growth = s.uniform(-5, -2)
			}

			gdp := baseGdp * math.Pow(1+growth/100, float64(year-firstYear))

			rec := &domain.GdpRecord{
				CountryCode:  spec.code,
				Year:         year,
				GdpPerCapita: ptr(round2(gdp)),
				GrowthPct:    ptr(round2(growth)),
				// GdpTotal stays NULL.
			}
			if err := s.repo.InsertGdp(ctx, rec); err != nil {
				return err
			}
			rows++
		}
	}
	s.log.Info("loaded gdp data", "rows", rows)
	return nil
}

func (s *Seeder) loadInequality(ctx context.Context) error {
	rows := 0
	for _, spec := range countries {
		bounds := giniRanges[spec.region]
		baseGini := s.uniform(bounds[0], bounds[1])

		for _, year := range surveyYears {
			gini := baseGini + s.uniform(-3, 3)
			gini = math.Max(20, math.Min(70, gini))

			lowest20 := s.uniform(4, 9)
			highest20 := s.uniform(40, 55)
			palma := round2(highest20 / (lowest20 * 2))

			rec := &domain.InequalityRecord{
				CountryCode:          spec.code,
				Year:                 year,
				Gini:                 ptr(round2(gini)),
				IncomeShareLowest20:  ptr(round2(lowest20)),
				IncomeShareHighest20: ptr(round2(highest20)),
				PalmaRatio:           ptr(palma),
			}
			if err := s.repo.InsertInequality(ctx, rec); err != nil {
				return err
			}
			rows++
		}
	}
	s.log.Info("loaded inequality data", "rows", rows)
	return nil
}

func (s *Seeder) loadPoverty(ctx context.Context) error {
	rows := 0
	for _, spec := range countries {
		// High-income countries have no meaningful poverty survey data.
		if spec.incomeGroup == incomeHigh {
			continue
		}

		var base215, base365, base685 float64
		switch spec.incomeGroup {
		case incomeLow:
			base215 = s.uniform(40, 70)
			base365 = s.uniform(60, 85)
			base685 = s.uniform(75, 95)
		case incomeLowerMiddle:
			base215 = s.uniform(10, 40)
			base365 = s.uniform(25, 60)
			base685 = s.uniform(50, 80)
		default: // upper middle
			base215 = s.uniform(1, 15)
			base365 = s.uniform(5, 30)
			base685 = s.uniform(15, 50)
		}

		for _, year := range surveyYears {
			// 15% reduction spread over the 2015-2023 period.
			elapsed := float64(year-firstYear) / 8
			factor := 1 - elapsed*0.15

			rec := &domain.PovertyRecord{
				CountryCode:  spec.code,
				Year:         year,
				Headcount215: ptr(round2(base215 * factor)),
				Headcount365: ptr(round2(base365 * factor)),
				Headcount685: ptr(round2(base685 * factor)),
				// PovertyGap stays NULL.
			}
			if err := s.repo.InsertPoverty(ctx, rec); err != nil {
				return err
			}
			rows++
		}
	}
	s.log.Info("loaded poverty data", "rows", rows)
	return nil
}

func (s *Seeder) loadTradeEducation(ctx context.Context) error {
	rows := 0
	for _, spec := range countries {
		baseTrade := s.uniform(40, 150)

		var secBase, terBase, expBase float64
		switch spec.incomeGroup {
		case incomeHigh:
			secBase = s.uniform(95, 105)
			terBase = s.uniform(60, 90)
			expBase = s.uniform(4, 6)
		case incomeUpperMiddle:
			secBase = s.uniform(75, 95)
			terBase = s.uniform(30, 60)
			expBase = s.uniform(3.5, 5.5)
		case incomeLowerMiddle:
			secBase = s.uniform(50, 80)
			terBase = s.uniform(15, 40)
			expBase = s.uniform(3, 5)
		default:
			secBase = s.uniform(30, 60)
			terBase = s.uniform(5, 20)
			expBase = s.uniform(2, 4)
		}

		for year := firstYear; year <= lastYear; year++ {
			dy := float64(year - firstYear)

			rec := &domain.TradeEducationRecord{
				CountryCode:         spec.code,
				Year:                year,
				TradePctGdp:         ptr(round2(baseTrade + s.uniform(-10, 10))),
				SecondaryEnrollment: ptr(round2(math.Min(105, secBase+dy*0.5))),
				TertiaryEnrollment:  ptr(round2(terBase + dy*0.3)),
				EduExpenditurePct:   ptr(round2(expBase + s.uniform(-0.5, 0.5))),
			}
			if err := s.repo.InsertTradeEducation(ctx, rec); err != nil {
				return err
			}
			rows++
		}
	}
	s.log.Info("loaded trade/education data", "rows", rows)
	return nil
}

func (s *Seeder) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr(v float64) *float64 { return &v }
