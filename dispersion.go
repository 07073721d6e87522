package hpi

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DispersionRow is the cross-entity spread for one year.
type DispersionRow struct {
	Year     int
	MaxValue float64
	MinValue float64
	Gap      float64
	GapPct   float64
}

// TrendDirection classifies how the cross-entity gap moved between two years.
type TrendDirection string

const (
	TrendWidened   TrendDirection = "widened"
	TrendNarrowed  TrendDirection = "narrowed"
	TrendUnchanged TrendDirection = "unchanged"
)

// Dispersion reports the max-min gap across entities for each requested year,
// ordered by year ascending. A year with no entities present yields no row.
// A year whose minimum is 0 is excluded: GapPct would be undefined.
func Dispersion(s *Series, years []int) []DispersionRow {
	var rows []DispersionRow
	for _, year := range uniqueYears(years) {
		var (
			minV, maxV float64
			ok         bool
		)

		if minV, maxV, ok = yearSpread(s, year); !ok || minV == 0 {
			continue
		}

		gap := maxV - minV
		rows = append(rows, DispersionRow{
			Year:     year,
			MaxValue: round2(maxV),
			MinValue: round2(minV),
			Gap:      round2(gap),
			GapPct:   round2(gap / minV * 100),
		})
	}

	return rows
}

// Trend compares the cross-entity gap at two years. The comparison uses the
// unrounded gaps, so two years that report the same rounded Gap can still
// classify as widened or narrowed.
func Trend(s *Series, earlier, later int) (TrendDirection, error) {
	if earlier >= later {
		return "", fmt.Errorf("earlier year %d is not before later year %d", earlier, later)
	}

	minE, maxE, okE := yearSpread(s, earlier)
	if !okE {
		return "", fmt.Errorf("no entities present in year %d", earlier)
	}

	minL, maxL, okL := yearSpread(s, later)
	if !okL {
		return "", fmt.Errorf("no entities present in year %d", later)
	}

	gapE, gapL := maxE-minE, maxL-minL
	switch {
	case gapL > gapE:
		return TrendWidened, nil
	case gapL < gapE:
		return TrendNarrowed, nil
	default:
		return TrendUnchanged, nil
	}
}

func yearSpread(s *Series, year int) (minV, maxV float64, ok bool) {
	var vals []float64
	for _, entity := range s.Entities() {
		if v, present := s.Value(entity, year); present {
			vals = append(vals, v)
		}
	}

	if vals == nil {
		return 0, 0, false
	}

	return floats.Min(vals), floats.Max(vals), true
}
