package engine

import (
	"sort"

	"backend/internal/models"
)

// Selection is the user's restriction per filter dimension. An empty slice
// leaves that dimension unrestricted; selected values within one dimension
// combine with OR, dimensions combine with AND.
type Selection struct {
	CountryRegion []string
	Aircraft      []string
	Operator      []string
	Years         []int
}

// Empty reports whether the selection restricts nothing.
func (s Selection) Empty() bool {
	return len(s.CountryRegion) == 0 && len(s.Aircraft) == 0 &&
		len(s.Operator) == 0 && len(s.Years) == 0
}

// FilterOptions collects the distinct values per dimension over the full
// dataset. Strings are sorted lexically, years ascending; year options only
// come from records that have a parsed date.
func FilterOptions(records []models.Record) models.FilterOptions {
	countries := map[string]struct{}{}
	aircraft := map[string]struct{}{}
	operators := map[string]struct{}{}
	years := map[int]struct{}{}

	for _, r := range records {
		countries[r.CountryRegion] = struct{}{}
		aircraft[r.Aircraft] = struct{}{}
		operators[r.Operator] = struct{}{}
		if r.HasDate {
			years[r.Year] = struct{}{}
		}
	}

	opts := models.FilterOptions{
		CountryRegion: sortedKeys(countries),
		Aircraft:      sortedKeys(aircraft),
		Operator:      sortedKeys(operators),
		Years:         make([]int, 0, len(years)),
	}
	for y := range years {
		opts.Years = append(opts.Years, y)
	}
	sort.Ints(opts.Years)
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Apply returns the records matching every restricted dimension, in input
// order. Applying the same selection to its own result changes nothing.
// The result may share backing storage with the input but is capped so an
// append cannot write into the caller's slice.
func Apply(records []models.Record, sel Selection) []models.Record {
	if sel.Empty() {
		return records[:len(records):len(records)]
	}

	countries := stringSet(sel.CountryRegion)
	aircraft := stringSet(sel.Aircraft)
	operators := stringSet(sel.Operator)
	years := intSet(sel.Years)

	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if countries != nil {
			if _, ok := countries[r.CountryRegion]; !ok {
				continue
			}
		}
		if aircraft != nil {
			if _, ok := aircraft[r.Aircraft]; !ok {
				continue
			}
		}
		if operators != nil {
			if _, ok := operators[r.Operator]; !ok {
				continue
			}
		}
		if years != nil {
			if !r.HasDate {
				continue
			}
			if _, ok := years[r.Year]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func stringSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func intSet(values []int) map[int]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
