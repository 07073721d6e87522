package hpi

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// VolatilityRow summarizes an entity's year-over-year percent changes.
// StdDevPct is the sample standard deviation (denominator n-1) of those
// changes; it is nil when the entity has exactly one qualifying change, where
// the sample standard deviation is undefined. It is never silently 0.
type VolatilityRow struct {
	Entity       string
	StdDevPct    *float64
	MinPct       float64
	MaxPct       float64
	YearsTracked int
}

// Volatility computes each entity's year-over-year percent changes and reports
// their spread. A change qualifies only across strict successor years
// (year+1); gaps are excluded, not interpolated. Entities with fewer than
// minYears qualifying changes are excluded. Rows are ordered by StdDevPct
// descending (nil last), ties broken by entity name ascending.
func Volatility(s *Series, minYears int) []VolatilityRow {
	var rows []VolatilityRow
	for _, entity := range s.Entities() {
		yoy := yoyPct(s, entity)
		if len(yoy) == 0 || len(yoy) < minYears {
			continue
		}

		row := VolatilityRow{
			Entity:       entity,
			MinPct:       round2(floats.Min(yoy)),
			MaxPct:       round2(floats.Max(yoy)),
			YearsTracked: len(yoy),
		}

		if len(yoy) > 1 {
			sd := round2(stat.StdDev(yoy, nil))
			row.StdDevPct = &sd
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		si, sj := rows[i].StdDevPct, rows[j].StdDevPct
		switch {
		case si == nil && sj == nil:
			return rows[i].Entity < rows[j].Entity
		case si == nil:
			return false
		case sj == nil:
			return true
		case *si != *sj:
			return *si > *sj
		default:
			return rows[i].Entity < rows[j].Entity
		}
	})

	return rows
}

// yoyPct returns the entity's percent changes across consecutive years, in
// chronological order.
func yoyPct(s *Series, entity string) []float64 {
	years := s.EntityYears(entity)

	var out []float64
	for ind := 1; ind < len(years); ind++ {
		if years[ind] != years[ind-1]+1 {
			continue
		}

		prior, _ := s.Value(entity, years[ind-1])
		cur, _ := s.Value(entity, years[ind])

		// zero base: the change is undefined, skip the pair
		if prior == 0 {
			continue
		}

		out = append(out, (cur-prior)/prior*100)
	}

	return out
}
