package hpi

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook collects report tables into one xlsx file, a sheet per report.
type Workbook struct {
	f      *excelize.File
	sheets int
}

func NewWorkbook() *Workbook {
	return &Workbook{f: excelize.NewFile()}
}

// AddSheet writes a header row plus the given rows. Cell types follow the same
// rules as Files.Save.
func (w *Workbook) AddSheet(name string, header []string, rows [][]any) error {
	if _, e := w.f.NewSheet(name); e != nil {
		return e
	}
	w.sheets++

	for ind, h := range header {
		cell, e := excelize.CoordinatesToCellName(ind+1, 1)
		if e != nil {
			return e
		}

		if e := w.f.SetCellValue(name, cell, h); e != nil {
			return e
		}
	}

	for r, row := range rows {
		for c, val := range row {
			cell, e := excelize.CoordinatesToCellName(c+1, r+2)
			if e != nil {
				return e
			}

			if p, ok := val.(*float64); ok {
				if p == nil {
					continue
				}

				val = *p
			}

			if e := w.f.SetCellValue(name, cell, val); e != nil {
				return e
			}
		}
	}

	return nil
}

// Save writes the workbook. The default empty sheet is dropped when at least
// one report sheet was added.
func (w *Workbook) Save(fileName string) error {
	if w.sheets == 0 {
		return fmt.Errorf("no sheets in workbook")
	}

	if e := w.f.DeleteSheet("Sheet1"); e != nil {
		return e
	}

	return w.f.SaveAs(fileName)
}
