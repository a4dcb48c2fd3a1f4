package engine

import (
	"fmt"

	"backend/internal/models"
)

// Palette cycled across chart series.
var chartColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Charts builds renderer-neutral chart configs for the chartable views.
// Metric-only questions (Q7-Q9) stay in the KPI block and get no chart.
func Charts(d *models.DashboardData) map[string]*models.ChartConfig {
	charts := map[string]*models.ChartConfig{}

	q1 := make([]models.ChartPoint, 0, len(d.CountryAircraft))
	for _, r := range d.CountryAircraft {
		q1 = append(q1, models.ChartPoint{
			Label: fmt.Sprintf("%s / %s", r.CountryRegion, r.Aircraft),
			Value: float64(r.Crashes),
		})
	}
	charts["q1"] = barChart("Crashes by Country & Aircraft", "Country / Aircraft", "Crashes", q1)

	q2 := make([]models.ChartPoint, 0, len(d.TopAircraft))
	for _, r := range d.TopAircraft {
		q2 = append(q2, models.ChartPoint{Label: r.Name, Value: float64(r.Crashes)})
	}
	charts["q2"] = barChart("Top Aircraft by Crashes", "Aircraft", "Crashes", q2)

	q3 := make([]models.ChartPoint, 0, len(d.TopOperators))
	for _, r := range d.TopOperators {
		q3 = append(q3, models.ChartPoint{Label: r.Name, Value: float64(r.Crashes)})
	}
	charts["q3"] = barChart("Top Operators by Crashes", "Operator", "Crashes", q3)

	q4 := make([]models.ChartPoint, 0, len(d.CrashesByYear))
	for _, r := range d.CrashesByYear {
		q4 = append(q4, models.ChartPoint{Label: fmt.Sprintf("%d", r.Year), Value: float64(r.Crashes)})
	}
	charts["q4"] = &models.ChartConfig{
		ChartType: "line",
		Title:     "Crash Distribution by Year",
		XAxis:     "Year",
		YAxis:     "Crashes",
		Series:    []models.ChartSeries{{Name: "Crashes", Data: q4}},
		Colors:    chartColors[:1],
	}

	q5 := make([]models.ChartPoint, 0, len(d.TopLocations))
	for _, r := range d.TopLocations {
		q5 = append(q5, models.ChartPoint{Label: r.Name, Value: r.Fatalities})
	}
	charts["q5"] = barChart("Top Locations by Fatalities", "Location", "Fatalities", q5)

	aboard := make([]models.ChartPoint, 0, len(d.CountryTraffic))
	fatal := make([]models.ChartPoint, 0, len(d.CountryTraffic))
	for _, r := range d.CountryTraffic {
		aboard = append(aboard, models.ChartPoint{Label: r.CountryRegion, Value: r.Aboard})
		fatal = append(fatal, models.ChartPoint{Label: r.CountryRegion, Value: r.Fatalities})
	}
	charts["q6"] = &models.ChartConfig{
		ChartType: "bar",
		Title:     "Countries by Passengers Aboard & Fatalities",
		XAxis:     "Country/Region",
		YAxis:     "People",
		Series: []models.ChartSeries{
			{Name: "Aboard", Data: aboard},
			{Name: "Fatalities", Data: fatal},
		},
		Colors: chartColors[:2],
	}

	q10 := make([]models.ChartPoint, 0, len(d.FatalitiesByMonth))
	for _, r := range d.FatalitiesByMonth {
		q10 = append(q10, models.ChartPoint{Label: r.Month, Value: r.Fatalities})
	}
	charts["q10"] = barChart("Fatalities by Month", "Month", "Fatalities", q10)

	return charts
}

func barChart(title, xAxis, yAxis string, points []models.ChartPoint) *models.ChartConfig {
	return &models.ChartConfig{
		ChartType: "bar",
		Title:     title,
		XAxis:     xAxis,
		YAxis:     yAxis,
		Series:    []models.ChartSeries{{Name: yAxis, Data: points}},
		Colors:    assignColors(len(points)),
	}
}

func assignColors(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = chartColors[i%len(chartColors)]
	}
	return colors
}
