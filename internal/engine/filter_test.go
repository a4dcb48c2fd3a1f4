package engine

import (
	"reflect"
	"testing"

	"backend/internal/models"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{CountryRegion: "US", Aircraft: "B737", Operator: "Pan Am", Location: "New York", Fatalities: 2, Aboard: 10, HasDate: true, Year: 1950, Month: "June"},
		{CountryRegion: "US", Aircraft: "B737", Operator: "TWA", Location: "Kansas", Fatalities: 2, Aboard: 5, HasDate: true, Year: 1951, Month: "July"},
		{CountryRegion: "FR", Aircraft: "A320", Operator: "Air France", Location: "Paris", Fatalities: 0, Aboard: 8},
	}
}

func TestFilterOptions(t *testing.T) {
	opts := FilterOptions(sampleRecords())

	if !reflect.DeepEqual(opts.CountryRegion, []string{"FR", "US"}) {
		t.Errorf("countries: %v", opts.CountryRegion)
	}
	if !reflect.DeepEqual(opts.Aircraft, []string{"A320", "B737"}) {
		t.Errorf("aircraft: %v", opts.Aircraft)
	}
	if !reflect.DeepEqual(opts.Operator, []string{"Air France", "Pan Am", "TWA"}) {
		t.Errorf("operators: %v", opts.Operator)
	}
	// The dateless FR record contributes no year option.
	if !reflect.DeepEqual(opts.Years, []int{1950, 1951}) {
		t.Errorf("years: %v", opts.Years)
	}
}

func TestApplyEmptySelection(t *testing.T) {
	records := sampleRecords()
	got := Apply(records, Selection{})
	if !reflect.DeepEqual(got, records) {
		t.Error("empty selection must return the full dataset in order")
	}
}

func TestApplyEmptySelectionDoesNotAliasCapacity(t *testing.T) {
	records := make([]models.Record, 0, 4)
	records = append(records, sampleRecords()...)

	got := Apply(records, Selection{})
	if cap(got) != len(got) {
		t.Fatalf("result capacity %d exceeds length %d", cap(got), len(got))
	}

	// Growing the result must not write into the input's spare capacity.
	got = append(got, models.Record{CountryRegion: "DE"})
	if records[:cap(records)][len(records)].CountryRegion == "DE" {
		t.Error("append to the filtered view mutated the dataset's backing array")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	records := sampleRecords()
	sel := Selection{CountryRegion: []string{"US"}, Aircraft: []string{"B737"}}

	once := Apply(records, sel)
	twice := Apply(once, sel)
	if !reflect.DeepEqual(once, twice) {
		t.Error("applying the same selection twice changed the result")
	}
	if len(once) != 2 {
		t.Fatalf("expected 2 records, got %d", len(once))
	}
}

func TestApplyCombinesDimensionsWithAND(t *testing.T) {
	got := Apply(sampleRecords(), Selection{
		CountryRegion: []string{"US"},
		Operator:      []string{"TWA"},
	})
	if len(got) != 1 || got[0].Location != "Kansas" {
		t.Fatalf("expected only the TWA record, got %+v", got)
	}
}

func TestApplyCombinesValuesWithOR(t *testing.T) {
	got := Apply(sampleRecords(), Selection{Operator: []string{"Pan Am", "Air France"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Operator != "Pan Am" || got[1].Operator != "Air France" {
		t.Errorf("input order not preserved: %+v", got)
	}
}

func TestApplyYearExcludesDatelessRecords(t *testing.T) {
	got := Apply(sampleRecords(), Selection{Years: []int{1950, 1951}})
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	for _, r := range got {
		if !r.HasDate {
			t.Error("year filter must exclude records without a date")
		}
	}
}
