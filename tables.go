package hpi

import "strconv"

// Flat header+cells views of each report, shared by Files.Save and
// Workbook.AddSheet.

func GrowthTable(rows []GrowthRow, yearA, yearB int) ([]string, [][]any) {
	header := []string{"entity", "value_" + strconv.Itoa(yearA), "value_" + strconv.Itoa(yearB), "pct_change"}

	var cells [][]any
	for _, r := range rows {
		cells = append(cells, []any{r.Entity, r.ValueA, r.ValueB, r.PctChange})
	}

	return header, cells
}

func VolatilityTable(rows []VolatilityRow) ([]string, [][]any) {
	header := []string{"entity", "stddev_pct", "min_pct", "max_pct", "years_tracked"}

	var cells [][]any
	for _, r := range rows {
		cells = append(cells, []any{r.Entity, r.StdDevPct, r.MinPct, r.MaxPct, r.YearsTracked})
	}

	return header, cells
}

func DispersionTable(rows []DispersionRow) ([]string, [][]any) {
	header := []string{"year", "max_value", "min_value", "gap", "gap_pct"}

	var cells [][]any
	for _, r := range rows {
		cells = append(cells, []any{r.Year, r.MaxValue, r.MinValue, r.Gap, r.GapPct})
	}

	return header, cells
}

func ConsistencyTable(rows []ConsistencyRow) ([]string, [][]any) {
	header := []string{"entity", "qualifying_years"}

	var cells [][]any
	for _, r := range rows {
		cells = append(cells, []any{r.Entity, r.Years})
	}

	return header, cells
}

func CoverageTable(rows []CoverageRow) ([]string, [][]any) {
	header := []string{"entity", "unique_cities", "unique_counties"}

	var cells [][]any
	for _, r := range rows {
		cells = append(cells, []any{r.Entity, r.Cities, r.Counties})
	}

	return header, cells
}

func (tab *PivotTable) Table() ([]string, [][]any) {
	header := append([]string{"year"}, tab.Entities...)

	var cells [][]any
	for ind, year := range tab.Years {
		row := []any{year}
		for _, cell := range tab.Cells[ind] {
			row = append(row, cell)
		}

		cells = append(cells, row)
	}

	return header, cells
}
