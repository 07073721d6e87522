package hpi

import "sort"

// RankRow is one entity's standing within a single year. Rank is the
// descending rank (1 = highest value); RankAsc is the ascending rank
// (1 = lowest value). Ties break by entity name ascending in both directions.
type RankRow struct {
	Entity   string
	AvgValue float64
	Rank     int
	RankAsc  int
}

// RankPerYear ranks every entity within each year it appears. The returned
// rows per year are ordered by Rank (highest value first).
func RankPerYear(s *Series) map[int][]RankRow {
	entities := s.Entities()

	out := make(map[int][]RankRow)
	for _, year := range s.Years() {
		var rows []RankRow
		for _, entity := range entities {
			if v, ok := s.Value(entity, year); ok {
				rows = append(rows, RankRow{Entity: entity, AvgValue: v})
			}
		}

		// rows are already entity-sorted, so a stable sort on value gives the
		// name tie-break for free
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].AvgValue > rows[j].AvgValue
		})
		for ind := range rows {
			rows[ind].Rank = ind + 1
		}

		asc := make([]RankRow, len(rows))
		copy(asc, rows)
		sort.SliceStable(asc, func(i, j int) bool {
			if asc[i].AvgValue != asc[j].AvgValue {
				return asc[i].AvgValue < asc[j].AvgValue
			}

			return asc[i].Entity < asc[j].Entity
		})

		ascRank := make(map[string]int, len(asc))
		for ind := range asc {
			ascRank[asc[ind].Entity] = ind + 1
		}

		for ind := range rows {
			rows[ind].RankAsc = ascRank[rows[ind].Entity]
			rows[ind].AvgValue = round2(rows[ind].AvgValue)
		}

		out[year] = rows
	}

	return out
}

// ConsistencyRow counts how many years an entity stayed inside the top (or
// bottom) K of its yearly ranking.
type ConsistencyRow struct {
	Entity string
	Years  int
}

// ConsistencyReport lists the entities that stayed in the top K and the bottom
// K of the yearly rankings for at least minQualifyingYears years.
type ConsistencyReport struct {
	Top    []ConsistencyRow
	Bottom []ConsistencyRow
}

// Consistency derives top/bottom-consistent entities from RankPerYear output.
// Each list is ordered by qualifying-year count descending, ties by entity
// name ascending, and truncated to limit entries (limit <= 0 keeps all).
func Consistency(ranked map[int][]RankRow, topK, minQualifyingYears, limit int) ConsistencyReport {
	top := make(map[string]int)
	bottom := make(map[string]int)

	for _, rows := range ranked {
		for _, row := range rows {
			if row.Rank <= topK {
				top[row.Entity]++
			}

			if row.RankAsc <= topK {
				bottom[row.Entity]++
			}
		}
	}

	return ConsistencyReport{
		Top:    consistencyRows(top, minQualifyingYears, limit),
		Bottom: consistencyRows(bottom, minQualifyingYears, limit),
	}
}

func consistencyRows(counts map[string]int, minYears, limit int) []ConsistencyRow {
	var rows []ConsistencyRow
	for entity, n := range counts {
		if n >= minYears {
			rows = append(rows, ConsistencyRow{Entity: entity, Years: n})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Years != rows[j].Years {
			return rows[i].Years > rows[j].Years
		}

		return rows[i].Entity < rows[j].Entity
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return rows
}
