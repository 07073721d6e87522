package hpi

import "sort"

// CoverageRow counts the distinct cities and counties tracked for one entity.
type CoverageRow struct {
	Entity   string
	Cities   int
	Counties int
}

// Coverage counts distinct city and county names per entity over the raw
// observations. Unlike the value reports it includes rows with a nil value:
// a tracked place is tracked even in years with no reading. Name matching is
// case-insensitive. Rows are ordered by city count descending, ties by entity
// name ascending.
func Coverage(obs []Observation) []CoverageRow {
	type dims struct {
		cities   map[string]bool
		counties map[string]bool
	}

	byEntity := make(map[string]*dims)
	names := make(map[string]string)

	for _, o := range obs {
		key := entityKey(o.Entity)
		if key == "" {
			continue
		}

		d := byEntity[key]
		if d == nil {
			d = &dims{cities: make(map[string]bool), counties: make(map[string]bool)}
			byEntity[key] = d
		}

		if city := entityKey(o.City); city != "" {
			d.cities[city] = true
		}

		if county := entityKey(o.County); county != "" {
			d.counties[county] = true
		}

		display := entityDisplay(o.Entity)
		if nm, ok := names[key]; !ok || display < nm {
			names[key] = display
		}
	}

	var rows []CoverageRow
	for key, d := range byEntity {
		rows = append(rows, CoverageRow{
			Entity:   names[key],
			Cities:   len(d.cities),
			Counties: len(d.counties),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Cities != rows[j].Cities {
			return rows[i].Cities > rows[j].Cities
		}

		return rows[i].Entity < rows[j].Entity
	})

	return rows
}
