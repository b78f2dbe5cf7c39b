package report

import "inequality-analytics/internal/domain"

func fp(v float64) *float64 { return &v }

func country(code, name, region, income string) domain.Country {
	return domain.Country{Code: code, Name: name, Region: region, IncomeGroup: income}
}

func gdpRec(code string, year int, perCapita, growth *float64) domain.GdpRecord {
	return domain.GdpRecord{CountryCode: code, Year: year, GdpPerCapita: perCapita, GrowthPct: growth}
}

func giniRec(code string, year int, gini *float64) domain.InequalityRecord {
	return domain.InequalityRecord{CountryCode: code, Year: year, Gini: gini}
}

func povertyRec(code string, year int, headcount365 *float64) domain.PovertyRecord {
	return domain.PovertyRecord{CountryCode: code, Year: year, Headcount365: headcount365}
}

func tradeRec(code string, year int, trade *float64) domain.TradeEducationRecord {
	return domain.TradeEducationRecord{CountryCode: code, Year: year, TradePctGdp: trade}
}
