package hpi

// PivotTable is a wide view of the aggregated series: one row per year, one
// column per entity. Cells[i][j] is the averaged value for Years[i] and
// Entities[j]; a nil cell means that entity has no entry for that year.
type PivotTable struct {
	Years    []int
	Entities []string
	Cells    [][]*float64
}

// Pivot builds the wide table. Entities keeps the caller's order (requested
// names unknown to the series are dropped); nil keeps every entity, sorted.
// Years are sorted ascending; nil keeps every year.
func Pivot(s *Series, entities []string, years []int) *PivotTable {
	if entities == nil {
		entities = s.Entities()
	} else {
		var known []string
		for _, entity := range entities {
			if len(s.EntityYears(entity)) > 0 {
				known = append(known, entity)
			}
		}
		entities = known
	}

	if years == nil {
		years = s.Years()
	} else {
		years = uniqueYears(years)
	}

	tab := &PivotTable{Years: years, Entities: entities}
	for _, year := range years {
		row := make([]*float64, len(entities))
		for ind, entity := range entities {
			if v, ok := s.Value(entity, year); ok {
				v = round2(v)
				row[ind] = &v
			}
		}

		tab.Cells = append(tab.Cells, row)
	}

	return tab
}
