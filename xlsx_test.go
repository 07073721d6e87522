package hpi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestWorkbook(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 100), ob("CA", 2025, 400),
		ob("NV", 2000, 100), ob("NV", 2025, 500),
	})

	header, cells := GrowthTable(Growth(s, 2000, 2025, false), 2000, 2025)

	wb := NewWorkbook()
	assert.Nil(t, wb.AddSheet("Growth", header, cells))

	fileName := filepath.Join(t.TempDir(), "report.xlsx")
	assert.Nil(t, wb.Save(fileName))

	f, e := excelize.OpenFile(fileName)
	assert.Nil(t, e)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Growth"}, f.GetSheetList())

	got, e := f.GetCellValue("Growth", "A2")
	assert.Nil(t, e)
	assert.Equal(t, "NV", got)
}

func TestWorkbook_empty(t *testing.T) {
	assert.NotNil(t, NewWorkbook().Save(filepath.Join(t.TempDir(), "x.xlsx")))
}
