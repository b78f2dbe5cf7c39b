package seed

// countrySpec is the static reference data for one country.
type countrySpec struct {
	code        string
	name        string
	region      string
	incomeGroup string
}

// Region names follow the World Bank taxonomy.
const (
	regionNorthAmerica = "North America"
	regionEurope       = "Europe & Central Asia"
	regionEastAsia     = "East Asia & Pacific"
	regionSouthAsia    = "South Asia"
	regionLatinAmerica = "Latin America & Caribbean"
	regionAfrica       = "Sub-Saharan Africa"
	regionMiddleEast   = "Middle East & North Africa"
)

// Income group labels follow the World Bank classification.
const (
	incomeHigh        = "High income"
	incomeUpperMiddle = "Upper middle income"
	incomeLowerMiddle = "Lower middle income"
	incomeLow         = "Low income"
)

// countries is the fixed 48-country reference set, in load order.
var countries = []countrySpec{
	{"USA", "United States", regionNorthAmerica, incomeHigh},
	{"GBR", "United Kingdom", regionEurope, incomeHigh},
	{"DEU", "Germany", regionEurope, incomeHigh},
	{"FRA", "France", regionEurope, incomeHigh},
	{"JPN", "Japan", regionEastAsia, incomeHigh},
	{"CHN", "China", regionEastAsia, incomeUpperMiddle},
	{"IND", "India", regionSouthAsia, incomeLowerMiddle},
	{"BRA", "Brazil", regionLatinAmerica, incomeUpperMiddle},
	{"ZAF", "South Africa", regionAfrica, incomeUpperMiddle},
	{"NGA", "Nigeria", regionAfrica, incomeLowerMiddle},
	{"KEN", "Kenya", regionAfrica, incomeLowerMiddle},
	{"ETH", "Ethiopia", regionAfrica, incomeLow},
	{"MEX", "Mexico", regionLatinAmerica, incomeUpperMiddle},
	{"ARG", "Argentina", regionLatinAmerica, incomeUpperMiddle},
	{"CHL", "Chile", regionLatinAmerica, incomeHigh},
	{"POL", "Poland", regionEurope, incomeHigh},
	{"CZE", "Czech Republic", regionEurope, incomeHigh},
	{"HUN", "Hungary", regionEurope, incomeHigh},
	{"RUS", "Russia", regionEurope, incomeUpperMiddle},
	{"TUR", "Turkey", regionEurope, incomeUpperMiddle},
	{"IDN", "Indonesia", regionEastAsia, incomeUpperMiddle},
	{"THA", "Thailand", regionEastAsia, incomeUpperMiddle},
	{"VNM", "Vietnam", regionEastAsia, incomeLowerMiddle},
	{"PHL", "Philippines", regionEastAsia, incomeLowerMiddle},
	{"EGY", "Egypt", regionMiddleEast, incomeLowerMiddle},
	{"MAR", "Morocco", regionMiddleEast, incomeLowerMiddle},
	{"GHA", "Ghana", regionAfrica, incomeLowerMiddle},
	{"TZA", "Tanzania", regionAfrica, incomeLowerMiddle},
	{"UGA", "Uganda", regionAfrica, incomeLow},
	{"RWA", "Rwanda", regionAfrica, incomeLow},
	{"SWE", "Sweden", regionEurope, incomeHigh},
	{"NOR", "Norway", regionEurope, incomeHigh},
	{"DNK", "Denmark", regionEurope, incomeHigh},
	{"FIN", "Finland", regionEurope, incomeHigh},
	{"NLD", "Netherlands", regionEurope, incomeHigh},
	{"BEL", "Belgium", regionEurope, incomeHigh},
	{"AUT", "Austria", regionEurope, incomeHigh},
	{"CHE", "Switzerland", regionEurope, incomeHigh},
	{"ITA", "Italy", regionEurope, incomeHigh},
	{"ESP", "Spain", regionEurope, incomeHigh},
	{"PRT", "Portugal", regionEurope, incomeHigh},
	{"GRC", "Greece", regionEurope, incomeHigh},
	{"CAN", "Canada", regionNorthAmerica, incomeHigh},
	{"AUS", "Australia", regionEastAsia, incomeHigh},
	{"NZL", "New Zealand", regionEastAsia, incomeHigh},
	{"KOR", "South Korea", regionEastAsia, incomeHigh},
	{"SGP", "Singapore", regionEastAsia, incomeHigh},
	{"MYS", "Malaysia", regionEastAsia, incomeUpperMiddle},
}

// gdpRange is the 2015 GDP-per-capita band for an income group.
var gdpRanges = map[string][2]float64{
	incomeHigh:        {40000, 80000},
	incomeUpperMiddle: {8000, 20000},
	incomeLowerMiddle: {2000, 8000},
	incomeLow:         {500, 2000},
}

// giniRanges is the base Gini band for a region.
var giniRanges = map[string][2]float64{
	regionLatinAmerica: {45, 55},
	regionAfrica:       {40, 65},
	regionMiddleEast:   {35, 42},
	regionSouthAsia:    {32, 38},
	regionEastAsia:     {30, 45},
	regionEurope:       {25, 38},
	regionNorthAmerica: {38, 42},
}

// surveyYears are the years inequality and poverty surveys exist for.
var surveyYears = []int{2015, 2017, 2019, 2021, 2023}

// Full annual coverage for GDP and trade/education.
const (
	firstYear = 2015
	lastYear  = 2023
)
