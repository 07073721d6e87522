package hpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPivot(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 100), ob("CA", 2001, 110),
		ob("NV", 2000, 50),
	})

	tab := Pivot(s, []string{"NV", "CA", "TX"}, nil)

	// caller order kept, unknown TX dropped
	assert.Equal(t, []string{"NV", "CA"}, tab.Entities)
	assert.Equal(t, []int{2000, 2001}, tab.Years)

	assert.Equal(t, 50.0, *tab.Cells[0][0])
	assert.Equal(t, 100.0, *tab.Cells[0][1])

	// NV has no 2001 entry: explicit nil, not 0
	assert.Nil(t, tab.Cells[1][0])
	assert.Equal(t, 110.0, *tab.Cells[1][1])
}

func TestPivot_defaults(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("NV", 2001, 50),
		ob("CA", 2000, 100),
	})

	tab := Pivot(s, nil, []int{2001})
	assert.Equal(t, []string{"CA", "NV"}, tab.Entities)
	assert.Equal(t, []int{2001}, tab.Years)
	assert.Nil(t, tab.Cells[0][0])
	assert.Equal(t, 50.0, *tab.Cells[0][1])
}

func TestPivotTable_Table(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 100),
		ob("NV", 2000, 50),
	})

	header, cells := Pivot(s, nil, nil).Table()
	assert.Equal(t, []string{"year", "CA", "NV"}, header)
	assert.Equal(t, 1, len(cells))
	assert.Equal(t, 2000, cells[0][0])
}
