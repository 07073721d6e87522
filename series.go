package hpi

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Series is the aggregated series: the arithmetic mean of all observed values
// sharing an (entity, year) key. Every report takes a *Series as its input and
// never mutates it.
type Series struct {
	values map[string]map[int]float64
	names  map[string]string
}

// Aggregate groups observations by (entity, year) and averages their values.
// Rows with a nil value are dropped; there is no imputation for missing years.
// The result is independent of input row order.
func Aggregate(obs []Observation) (*Series, error) {
	grouped := make(map[string]map[int][]float64)
	names := make(map[string]string)

	for ind := 0; ind < len(obs); ind++ {
		o := obs[ind]
		if o.Value == nil {
			continue
		}

		key := entityKey(o.Entity)
		if key == "" {
			return nil, &RowError{Row: ind, Column: "entity", Reason: "empty entity name"}
		}

		if math.IsNaN(*o.Value) || math.IsInf(*o.Value, 0) {
			return nil, &RowError{Row: ind, Column: "value", Reason: fmt.Sprintf("non-finite value %v", *o.Value)}
		}

		if grouped[key] == nil {
			grouped[key] = make(map[int][]float64)
		}

		grouped[key][o.Year] = append(grouped[key][o.Year], *o.Value)

		// keep the smallest spelling seen so the display name does not depend
		// on row order
		display := entityDisplay(o.Entity)
		if nm, ok := names[key]; !ok || display < nm {
			names[key] = display
		}
	}

	s := &Series{
		values: make(map[string]map[int]float64),
		names:  names,
	}

	for key, byYear := range grouped {
		s.values[key] = make(map[int]float64)
		for year, vals := range byYear {
			// summation order must not depend on row order either
			sort.Float64s(vals)
			s.values[key][year] = stat.Mean(vals, nil)
		}
	}

	return s, nil
}

// Entities returns the display names of every entity, sorted ascending.
func (s *Series) Entities() []string {
	var out []string
	for key := range s.values {
		out = append(out, s.names[key])
	}

	sort.Strings(out)

	return out
}

// Years returns every year present for any entity, sorted ascending.
func (s *Series) Years() []int {
	seen := make(map[int]bool)
	for _, byYear := range s.values {
		for year := range byYear {
			seen[year] = true
		}
	}

	var out []int
	for year := range seen {
		out = append(out, year)
	}

	sort.Ints(out)

	return out
}

// EntityYears returns the years with an entry for entity, sorted ascending.
func (s *Series) EntityYears(entity string) []int {
	byYear, ok := s.values[entityKey(entity)]
	if !ok {
		return nil
	}

	var out []int
	for year := range byYear {
		out = append(out, year)
	}

	sort.Ints(out)

	return out
}

// Value returns the averaged value for (entity, year). Entity lookup is
// case-insensitive.
func (s *Series) Value(entity string, year int) (float64, bool) {
	byYear, ok := s.values[entityKey(entity)]
	if !ok {
		return 0, false
	}

	v, ok := byYear[year]

	return v, ok
}

// Len is the number of distinct (entity, year) pairs.
func (s *Series) Len() int {
	n := 0
	for _, byYear := range s.values {
		n += len(byYear)
	}

	return n
}
