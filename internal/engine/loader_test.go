package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aircrashes.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	csvContent := `Date,Country/Region,Aircraft,Operator,Location,Fatalities (air),Ground,Aboard
15-Jun-1950,United States,Boeing 737,Pan Am,"Cove Neck, New York",2,1,10
,France,Airbus A320,,Paris,,,
garbage-date,Brazil,Embraer 190,LATAM,Sao Paulo,3,,8
`
	records, err := Load(writeTempCSV(t, csvContent))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	r0 := records[0]
	if r0.CountryRegion != "United States" || r0.Location != "Cove Neck, New York" {
		t.Errorf("row 0 categoricals wrong: %+v", r0)
	}
	if r0.Fatalities != 3 || r0.AirFatalities != 2 || r0.GroundFatalities != 1 {
		t.Errorf("row 0 fatalities wrong: %+v", r0)
	}
	if !r0.HasDate || r0.Year != 1950 || r0.Month != "June" {
		t.Errorf("row 0 date wrong: %+v", r0)
	}

	// Missing operator and numerics degrade, never error.
	r1 := records[1]
	if r1.Operator != Unspecified {
		t.Errorf("expected Unspecified operator, got %q", r1.Operator)
	}
	if r1.Fatalities != 0 || r1.Aboard != 0 {
		t.Errorf("expected zero numerics, got %+v", r1)
	}
	if r1.HasDate {
		t.Error("empty date should leave record without date")
	}

	// Unparseable date keeps the record, drops year/month.
	r2 := records[2]
	if r2.HasDate || r2.Year != 0 || r2.Month != "" {
		t.Errorf("unparseable date should yield no year/month: %+v", r2)
	}
	if r2.Fatalities != 3 {
		t.Errorf("row 2 fatalities: expected 3, got %v", r2.Fatalities)
	}
}

func TestLoadMissingFatalityColumns(t *testing.T) {
	csvContent := `Country/Region,Aircraft,Operator,Location,Aboard
Germany,Junkers,Lufthansa,Berlin,12
`
	records, err := Load(writeTempCSV(t, csvContent))
	if err != nil {
		t.Fatal(err)
	}
	r := records[0]
	if r.AirFatalities != 0 || r.GroundFatalities != 0 || r.Fatalities != 0 {
		t.Errorf("absent fatality columns must synthesize zeros: %+v", r)
	}
	if r.Aboard != 12 {
		t.Errorf("aboard: expected 12, got %v", r.Aboard)
	}
}

func TestLoadFatalitiesInvariant(t *testing.T) {
	csvContent := `Country/Region,Aircraft,Operator,Location,Fatalities (air),Ground,Aboard
US,DC-3,TWA,Kansas,5,2,20
US,DC-3,TWA,Kansas,,7,20
US,DC-3,TWA,Kansas,not-a-number,-4,20
`
	records, err := Load(writeTempCSV(t, csvContent))
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range records {
		if r.Fatalities != r.AirFatalities+r.GroundFatalities {
			t.Errorf("row %d: fatalities %v != air %v + ground %v", i, r.Fatalities, r.AirFatalities, r.GroundFatalities)
		}
	}
	if records[2].Fatalities != 0 {
		t.Errorf("garbled and negative values must count as zero, got %v", records[2].Fatalities)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMissingRequiredColumns(t *testing.T) {
	csvContent := `Date,Aboard
15-Jun-1950,10
`
	if _, err := Load(writeTempCSV(t, csvContent)); err == nil {
		t.Fatal("expected error when categorical columns are absent")
	}
}

func TestParseDateLayouts(t *testing.T) {
	cases := map[string]int{
		"15-Jun-1950":        1950,
		"September 17, 1908": 1908,
		"1972-06-18":         1972,
		"06/18/1972":         1972,
	}
	for in, year := range cases {
		d, ok := parseDate(in)
		if !ok {
			t.Errorf("%q: expected parse", in)
			continue
		}
		if d.Year() != year {
			t.Errorf("%q: expected year %d, got %d", in, year, d.Year())
		}
	}
	if _, ok := parseDate("someday"); ok {
		t.Error("expected parse failure")
	}
}
