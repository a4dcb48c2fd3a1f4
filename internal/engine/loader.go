package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"backend/internal/models"
)

// Unspecified is the stand-in for missing categorical values.
const Unspecified = "Unspecified"

// Column aliases seen across aircrash CSV exports. Matching is
// case-insensitive on the trimmed header cell.
var columnAliases = map[string][]string{
	"country":  {"country/region", "country", "country / region"},
	"operator": {"operator"},
	"aircraft": {"aircraft"},
	"location": {"location"},
	"air":      {"fatalities (air)", "air"},
	"ground":   {"ground", "fatalities (ground)"},
	"aboard":   {"aboard"},
	"date":     {"date"},
}

// The four categorical columns must exist in the source; everything else
// degrades to zero / no-value when absent.
var requiredColumns = []string{"country", "operator", "aircraft", "location"}

// Date layouts tried in order. Aircrash datasets mix these freely.
var dateLayouts = []string{
	"02-Jan-2006",
	"2-Jan-2006",
	"January 2, 2006",
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
}

// Load reads the CSV at path and returns the normalized dataset.
//
// Per-value malformations never fail the load: missing categoricals become
// Unspecified, missing or garbled numbers become 0 and unparseable dates
// leave the record without year/month. Only an unreadable file or a source
// with none of the required columns is an error.
func Load(path string) ([]models.Record, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := decode(f)
	if err != nil {
		return nil, err
	}

	log.Printf("loader: %d records from %s in %v", len(records), path, time.Since(start))
	return records, nil
}

func decode(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single bad line degrades to a skipped record, the
			// rest of the file still loads.
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		records = append(records, normalize(row, cols))
	}

	return records, nil
}

// resolveColumns maps the logical column names to header indexes. -1 marks
// an absent optional column.
func resolveColumns(header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cols := make(map[string]int, len(columnAliases))
	for logical, aliases := range columnAliases {
		cols[logical] = -1
		for _, a := range aliases {
			if i, ok := byName[a]; ok {
				cols[logical] = i
				break
			}
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if cols[c] == -1 {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func normalize(row []string, cols map[string]int) models.Record {
	rec := models.Record{
		CountryRegion:    categorical(row, cols["country"]),
		Operator:         categorical(row, cols["operator"]),
		Aircraft:         categorical(row, cols["aircraft"]),
		Location:         categorical(row, cols["location"]),
		AirFatalities:    numeric(row, cols["air"]),
		GroundFatalities: numeric(row, cols["ground"]),
		Aboard:           numeric(row, cols["aboard"]),
	}
	rec.Fatalities = rec.AirFatalities + rec.GroundFatalities

	if d, ok := parseDate(field(row, cols["date"])); ok {
		rec.HasDate = true
		rec.Date = d
		rec.Year = d.Year()
		rec.Month = d.Month().String()
	}
	return rec
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func categorical(row []string, idx int) string {
	if v := field(row, idx); v != "" {
		return v
	}
	return Unspecified
}

// numeric parses a non-negative count; anything unparseable counts as zero.
func numeric(row []string, idx int) float64 {
	v := field(row, idx)
	if v == "" {
		return 0
	}
	v = strings.ReplaceAll(v, ",", "")
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseDate(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, v); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
