package hpi

import (
	"fmt"
	"strings"
)

// Summary collects the headline findings of a full run. Pointer fields are nil
// when the corresponding report produced no rows.
type Summary struct {
	Entities  int
	FirstYear int
	LastYear  int

	TopGrowth   *GrowthRow
	WidestGap   *DispersionRow
	MostTracked *CoverageRow
}

// Summarize assembles a Summary from already-computed reports. It takes report
// output rather than recomputing so the summary always agrees with what was
// written.
func Summarize(s *Series, growth []GrowthRow, dispersion []DispersionRow, coverage []CoverageRow) Summary {
	sm := Summary{Entities: len(s.Entities())}

	if years := s.Years(); len(years) > 0 {
		sm.FirstYear, sm.LastYear = years[0], years[len(years)-1]
	}

	for ind := range growth {
		if sm.TopGrowth == nil || growth[ind].PctChange > sm.TopGrowth.PctChange {
			sm.TopGrowth = &growth[ind]
		}
	}

	for ind := range dispersion {
		if sm.WidestGap == nil || dispersion[ind].Gap > sm.WidestGap.Gap {
			sm.WidestGap = &dispersion[ind]
		}
	}

	if len(coverage) > 0 {
		sm.MostTracked = &coverage[0]
	}

	return sm
}

func (sm Summary) String() string {
	var b strings.Builder

	b.WriteString("Housing Index Summary\n")
	b.WriteString("=====================\n\n")
	fmt.Fprintf(&b, "- Dataset coverage: %d entities, %d-%d period\n", sm.Entities, sm.FirstYear, sm.LastYear)

	if sm.TopGrowth != nil {
		fmt.Fprintf(&b, "- Highest growth: %s (%.2f%%)\n", sm.TopGrowth.Entity, sm.TopGrowth.PctChange)
	}

	if sm.WidestGap != nil {
		fmt.Fprintf(&b, "- Widest cross-entity gap: %d (%.2f)\n", sm.WidestGap.Year, sm.WidestGap.Gap)
	}

	if sm.MostTracked != nil {
		fmt.Fprintf(&b, "- Most cities tracked: %s (%d)\n", sm.MostTracked.Entity, sm.MostTracked.Cities)
	}

	return b.String()
}
