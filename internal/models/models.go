package models

import "time"

// Record is one normalized accident entry. The loader guarantees the four
// categorical fields are never empty ("Unspecified" stands in for missing
// values) and that Fatalities == AirFatalities + GroundFatalities.
type Record struct {
	CountryRegion    string
	Operator         string
	Aircraft         string
	Location         string
	AirFatalities    float64
	GroundFatalities float64
	Fatalities       float64
	Aboard           float64

	// Date fields are present only when the source date parsed.
	HasDate bool
	Date    time.Time
	Year    int
	Month   string
}

// FilterOptions holds the selectable values per filter dimension,
// computed over the full dataset.
type FilterOptions struct {
	CountryRegion []string `json:"country_region"`
	Aircraft      []string `json:"aircraft"`
	Operator      []string `json:"operator"`
	Years         []int    `json:"years"`
}

// KPIBlock is the summary strip shown above the research questions.
type KPIBlock struct {
	TotalCrashes    int     `json:"total_crashes"`
	TotalFatalities float64 `json:"total_fatalities"`
	TotalAboard     float64 `json:"total_aboard"`
	AvgFatalities   float64 `json:"avg_fatalities"`
	ContributionPct float64 `json:"fatalities_contribution_pct"`
}

type DashboardData struct {
	KPIs KPIBlock `json:"kpis"`

	CountryAircraft   []CountryAircraftRow `json:"country_aircraft"`    // Q1
	TopAircraft       []CountRow           `json:"top_aircraft"`        // Q2
	TopOperators      []CountRow           `json:"top_operators"`       // Q3
	CrashesByYear     []YearRow            `json:"crashes_by_year"`     // Q4
	TopLocations      []FatalityRow        `json:"top_locations"`       // Q5
	CountryTraffic    []TrafficRow         `json:"country_traffic"`     // Q6
	FatalitiesByMonth []MonthRow           `json:"fatalities_by_month"` // Q10
}

type CountryAircraftRow struct {
	CountryRegion string `json:"country_region"`
	Aircraft      string `json:"aircraft"`
	Crashes       int    `json:"crashes"`
}

// CountRow is a generic (name, crash count) pair used by the aircraft and
// operator rankings.
type CountRow struct {
	Name    string `json:"name"`
	Crashes int    `json:"crashes"`
}

type YearRow struct {
	Year    int `json:"year"`
	Crashes int `json:"crashes"`
}

type FatalityRow struct {
	Name       string  `json:"name"`
	Fatalities float64 `json:"fatalities"`
}

type TrafficRow struct {
	CountryRegion string  `json:"country_region"`
	Aboard        float64 `json:"aboard"`
	Fatalities    float64 `json:"fatalities"`
}

type MonthRow struct {
	Month      string  `json:"month"`
	Fatalities float64 `json:"fatalities"`
}

// ChartPoint / ChartSeries / ChartConfig describe a chart in a
// renderer-neutral way; the dashboard page draws them client-side.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

type ChartConfig struct {
	ChartType string        `json:"chart_type"` // "bar" or "line"
	Title     string        `json:"title"`
	XAxis     string        `json:"x_axis"`
	YAxis     string        `json:"y_axis"`
	Series    []ChartSeries `json:"series"`
	Colors    []string      `json:"colors"`
}
