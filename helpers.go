package hpi

import (
	"math"
	"sort"
)

// round2 rounds to 2 decimal places. Report values are rounded only when a row
// is emitted, never inside intermediate computation.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// uniqueYears sorts the requested years ascending and drops duplicates.
func uniqueYears(years []int) []int {
	seen := make(map[int]bool)

	var out []int
	for _, year := range years {
		if !seen[year] {
			seen[year] = true
			out = append(out, year)
		}
	}

	sort.Ints(out)

	return out
}
