package engine

import (
	"sort"

	"backend/internal/models"
)

// Compute builds the KPI block and the ten research-question views from the
// filtered view. The full dataset is only needed for the contribution
// percentage. Every view is recomputed from scratch; an empty view yields
// zero KPIs and empty tables, never an error.
func Compute(view, all []models.Record) *models.DashboardData {
	return &models.DashboardData{
		KPIs:              computeKPIs(view, all),
		CountryAircraft:   topCountryAircraft(view, 10),
		TopAircraft:       countBy(view, func(r models.Record) string { return r.Aircraft }, 6),
		TopOperators:      countBy(view, func(r models.Record) string { return r.Operator }, 5),
		CrashesByYear:     crashesByYear(view, 10),
		TopLocations:      topLocations(view, 5),
		CountryTraffic:    countryTraffic(view, 5),
		FatalitiesByMonth: fatalitiesByMonth(view),
	}
}

func computeKPIs(view, all []models.Record) models.KPIBlock {
	k := models.KPIBlock{TotalCrashes: len(view)}
	for _, r := range view {
		k.TotalFatalities += r.Fatalities
		k.TotalAboard += r.Aboard
	}
	if k.TotalCrashes > 0 {
		k.AvgFatalities = k.TotalFatalities / float64(k.TotalCrashes)
	}

	var datasetFatalities float64
	for _, r := range all {
		datasetFatalities += r.Fatalities
	}
	if datasetFatalities > 0 {
		k.ContributionPct = k.TotalFatalities / datasetFatalities * 100
	}
	return k
}

// Q1: crashes per (country, aircraft) pair, top n. Ties keep first-seen
// group order, hence the stable sort everywhere below.
func topCountryAircraft(view []models.Record, n int) []models.CountryAircraftRow {
	type key struct{ country, aircraft string }
	counts := map[key]int{}
	order := []key{}
	for _, r := range view {
		k := key{r.CountryRegion, r.Aircraft}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	rows := make([]models.CountryAircraftRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, models.CountryAircraftRow{
			CountryRegion: k.country,
			Aircraft:      k.aircraft,
			Crashes:       counts[k],
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Crashes > rows[j].Crashes })
	return truncate(rows, n)
}

// Q2/Q3: crashes per distinct value of one dimension, top n.
func countBy(view []models.Record, dim func(models.Record) string, n int) []models.CountRow {
	counts := map[string]int{}
	order := []string{}
	for _, r := range view {
		v := dim(r)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	rows := make([]models.CountRow, 0, len(order))
	for _, v := range order {
		rows = append(rows, models.CountRow{Name: v, Crashes: counts[v]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Crashes > rows[j].Crashes })
	return truncate(rows, n)
}

// Q4: the n years with the most crashes, re-sorted ascending by year for
// display. Records without a parsed date are left out.
func crashesByYear(view []models.Record, n int) []models.YearRow {
	counts := map[int]int{}
	order := []int{}
	for _, r := range view {
		if !r.HasDate {
			continue
		}
		if _, seen := counts[r.Year]; !seen {
			order = append(order, r.Year)
		}
		counts[r.Year]++
	}

	rows := make([]models.YearRow, 0, len(order))
	for _, y := range order {
		rows = append(rows, models.YearRow{Year: y, Crashes: counts[y]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Crashes > rows[j].Crashes })
	rows = truncate(rows, n)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows
}

// Q5: fatalities summed per location, top n.
func topLocations(view []models.Record, n int) []models.FatalityRow {
	sums := map[string]float64{}
	order := []string{}
	for _, r := range view {
		if _, seen := sums[r.Location]; !seen {
			order = append(order, r.Location)
		}
		sums[r.Location] += r.Fatalities
	}

	rows := make([]models.FatalityRow, 0, len(order))
	for _, l := range order {
		rows = append(rows, models.FatalityRow{Name: l, Fatalities: sums[l]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Fatalities > rows[j].Fatalities })
	return truncate(rows, n)
}

// Q6: aboard and fatalities summed per country, ranked by aboard, top n.
func countryTraffic(view []models.Record, n int) []models.TrafficRow {
	type sums struct{ aboard, fatalities float64 }
	agg := map[string]*sums{}
	order := []string{}
	for _, r := range view {
		s, seen := agg[r.CountryRegion]
		if !seen {
			s = &sums{}
			agg[r.CountryRegion] = s
			order = append(order, r.CountryRegion)
		}
		s.aboard += r.Aboard
		s.fatalities += r.Fatalities
	}

	rows := make([]models.TrafficRow, 0, len(order))
	for _, c := range order {
		rows = append(rows, models.TrafficRow{
			CountryRegion: c,
			Aboard:        agg[c].aboard,
			Fatalities:    agg[c].fatalities,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Aboard > rows[j].Aboard })
	return truncate(rows, n)
}

// Q10: fatalities summed per month name, descending, no truncation.
// Records without a parsed date are left out.
func fatalitiesByMonth(view []models.Record) []models.MonthRow {
	sums := map[string]float64{}
	order := []string{}
	for _, r := range view {
		if !r.HasDate {
			continue
		}
		if _, seen := sums[r.Month]; !seen {
			order = append(order, r.Month)
		}
		sums[r.Month] += r.Fatalities
	}

	rows := make([]models.MonthRow, 0, len(order))
	for _, m := range order {
		rows = append(rows, models.MonthRow{Month: m, Fatalities: sums[m]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Fatalities > rows[j].Fatalities })
	return rows
}

func truncate[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
