// Package export renders computed dashboard tables into an xlsx workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"backend/internal/models"
)

// Workbook builds one sheet per research question plus a summary sheet for
// the KPI block. An empty view produces sheets with headers only.
func Workbook(data *models.DashboardData) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummary(f, data.KPIs); err != nil {
		return nil, err
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{"Q1 Country & Aircraft", []string{"Country/Region", "Aircraft", "Crashes"}, countryAircraftRows(data.CountryAircraft)},
		{"Q2 Top Aircraft", []string{"Aircraft", "Crashes"}, countRows(data.TopAircraft)},
		{"Q3 Top Operators", []string{"Operator", "Crashes"}, countRows(data.TopOperators)},
		{"Q4 Crashes by Year", []string{"Year", "Crashes"}, yearRows(data.CrashesByYear)},
		{"Q5 Top Locations", []string{"Location", "Fatalities"}, fatalityRows(data.TopLocations)},
		{"Q6 Country Traffic", []string{"Country/Region", "Aboard", "Fatalities"}, trafficRows(data.CountryTraffic)},
		{"Q10 Fatalities by Month", []string{"Month", "Fatalities"}, monthRows(data.FatalitiesByMonth)},
	}

	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.header, s.rows); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeSummary(f *excelize.File, k models.KPIBlock) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	rows := [][]any{
		{"Total Crashes", k.TotalCrashes},
		{"Total Fatalities", k.TotalFatalities},
		{"Total Aboard", k.TotalAboard},
		{"Average Fatalities per Crash", k.AvgFatalities},
		{"Fatalities Contribution %", k.ContributionPct},
	}
	return fillSheet(f, sheet, []string{"Metric", "Value"}, rows)
}

func writeSheet(f *excelize.File, name string, header []string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	return fillSheet(f, name, header, rows)
}

func fillSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	for i, name := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header of %s: %w", sheet, err)
		}
	}
	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("write %s: %w", sheet, err)
			}
		}
	}
	return nil
}

func countryAircraftRows(in []models.CountryAircraftRow) [][]any {
	out := make([][]any, 0, len(in))
	for _, r := range in {
		out = append(out, []any{r.CountryRegion, r.Aircraft, r.Crashes})
	}
	return out
}

func countRows(in []models.CountRow) [][]any {
	out := make([][]any, 0, len(in))
	for _, r := range in {
		out = append(out, []any{r.Name, r.Crashes})
	}
	return out
}

func yearRows(in []models.YearRow) [][]any {
	out := make([][]any, 0, len(in))
	for _, r := range in {
		out = append(out, []any{r.Year, r.Crashes})
	}
	return out
}

func fatalityRows(in []models.FatalityRow) [][]any {
	out := make([][]any, 0, len(in))
	for _, r := range in {
		out = append(out, []any{r.Name, r.Fatalities})
	}
	return out
}

func trafficRows(in []models.TrafficRow) [][]any {
	out := make([][]any, 0, len(in))
	for _, r := range in {
		out = append(out, []any{r.CountryRegion, r.Aboard, r.Fatalities})
	}
	return out
}

func monthRows(in []models.MonthRow) [][]any {
	out := make([][]any, 0, len(in))
	for _, r := range in {
		out = append(out, []any{r.Month, r.Fatalities})
	}
	return out
}
