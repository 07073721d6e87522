package hpi

import "sort"

// GrowthRow is one entity's change between the two endpoint years.
type GrowthRow struct {
	Entity    string
	ValueA    float64
	ValueB    float64
	PctChange float64
}

// Growth compares each entity's average value at yearA and yearB and reports
// the percent change. Entities missing either endpoint are excluded, as are
// entities whose yearA value is 0 (the division is undefined; no inf/NaN rows).
// Rows are ordered by percent change -- ascending if ascending is true --
// with ties broken by entity name ascending.
func Growth(s *Series, yearA, yearB int, ascending bool) []GrowthRow {
	var rows []GrowthRow
	for _, entity := range s.Entities() {
		var (
			va, vb   float64
			okA, okB bool
		)

		if va, okA = s.Value(entity, yearA); !okA {
			continue
		}

		if vb, okB = s.Value(entity, yearB); !okB {
			continue
		}

		if va == 0 {
			continue
		}

		rows = append(rows, GrowthRow{
			Entity:    entity,
			ValueA:    round2(va),
			ValueB:    round2(vb),
			PctChange: round2((vb - va) / va * 100),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].PctChange != rows[j].PctChange {
			if ascending {
				return rows[i].PctChange < rows[j].PctChange
			}

			return rows[i].PctChange > rows[j].PctChange
		}

		return rows[i].Entity < rows[j].Entity
	})

	return rows
}
