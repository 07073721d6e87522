package hpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispersion(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 110), ob("CA", 2025, 415),
		ob("NV", 2000, 100), ob("NV", 2025, 400),
	})

	rows := Dispersion(s, []int{2025, 2000, 2000})
	assert.Equal(t, 2, len(rows))

	// ascending by year, duplicates collapsed
	assert.Equal(t, 2000, rows[0].Year)
	assert.Equal(t, 110.0, rows[0].MaxValue)
	assert.Equal(t, 100.0, rows[0].MinValue)
	assert.Equal(t, 10.0, rows[0].Gap)
	assert.Equal(t, 10.0, rows[0].GapPct)

	assert.Equal(t, 2025, rows[1].Year)
	assert.Equal(t, 15.0, rows[1].Gap)
	assert.Equal(t, 3.75, rows[1].GapPct)
}

func TestDispersion_emptyYear(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 110),
		ob("NV", 2000, 100),
	})

	// 1999 has no entities: no row, not a zero-filled row
	rows := Dispersion(s, []int{1999, 2000})
	assert.Equal(t, 1, len(rows))
	assert.Equal(t, 2000, rows[0].Year)
}

func TestDispersion_zeroMin(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 110),
		ob("NV", 2000, 0),
	})

	// GapPct would divide by zero: the year is excluded
	assert.Equal(t, 0, len(Dispersion(s, []int{2000})))
}

func TestTrend(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 110), ob("CA", 2025, 415),
		ob("NV", 2000, 100), ob("NV", 2025, 400),
	})

	// gap 10 -> 15
	dir, e := Trend(s, 2000, 2025)
	assert.Nil(t, e)
	assert.Equal(t, TrendWidened, dir)

	// gap 15 -> 10
	s = makeSeries(t, []Observation{
		ob("CA", 2000, 115), ob("CA", 2025, 410),
		ob("NV", 2000, 100), ob("NV", 2025, 400),
	})
	dir, e = Trend(s, 2000, 2025)
	assert.Nil(t, e)
	assert.Equal(t, TrendNarrowed, dir)

	// gap 10 -> 10
	s = makeSeries(t, []Observation{
		ob("CA", 2000, 110), ob("CA", 2025, 410),
		ob("NV", 2000, 100), ob("NV", 2025, 400),
	})
	dir, e = Trend(s, 2000, 2025)
	assert.Nil(t, e)
	assert.Equal(t, TrendUnchanged, dir)
}

func TestTrend_errors(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 110),
		ob("NV", 2000, 100),
	})

	_, e := Trend(s, 2025, 2000)
	assert.NotNil(t, e)

	_, e = Trend(s, 2000, 2025)
	assert.NotNil(t, e)
}
