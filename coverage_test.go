package hpi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverage(t *testing.T) {
	obs := []Observation{
		{Entity: "CA", City: "Fresno", County: "Fresno", Year: 2000, Value: fp(100)},
		{Entity: "CA", City: "FRESNO", County: "Fresno", Year: 2001, Value: fp(110)},
		{Entity: "CA", City: "Oakland", County: "Alameda", Year: 2000, Value: fp(200)},
		// nil reading still counts the place as tracked
		{Entity: "NV", City: "Reno", County: "Washoe", Year: 2000, Value: nil},
	}

	rows := Coverage(obs)
	assert.Equal(t, 2, len(rows))

	assert.Equal(t, CoverageRow{Entity: "CA", Cities: 2, Counties: 2}, rows[0])
	assert.Equal(t, CoverageRow{Entity: "NV", Cities: 1, Counties: 1}, rows[1])
}

func TestCoverage_ordering(t *testing.T) {
	obs := []Observation{
		{Entity: "NV", City: "Reno", Year: 2000},
		{Entity: "CA", City: "Fresno", Year: 2000},
	}

	// equal city counts: entity name ascending
	rows := Coverage(obs)
	assert.Equal(t, "CA", rows[0].Entity)
	assert.Equal(t, "NV", rows[1].Entity)
}

func TestSummarize(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 100), ob("CA", 2025, 400),
		ob("NV", 2000, 100), ob("NV", 2025, 500),
	})

	growth := Growth(s, 2000, 2025, true) // ascending on purpose
	dispersion := Dispersion(s, s.Years())
	coverage := Coverage([]Observation{{Entity: "CA", City: "Fresno", Year: 2000}})

	sm := Summarize(s, growth, dispersion, coverage)

	assert.Equal(t, 2, sm.Entities)
	assert.Equal(t, 2000, sm.FirstYear)
	assert.Equal(t, 2025, sm.LastYear)

	// top growth is by value, not by report order
	assert.Equal(t, "NV", sm.TopGrowth.Entity)
	assert.Equal(t, 2025, sm.WidestGap.Year)
	assert.Equal(t, "CA", sm.MostTracked.Entity)

	text := sm.String()
	assert.True(t, strings.Contains(text, "2 entities, 2000-2025"))
	assert.True(t, strings.Contains(text, "NV (400.00%)"))

	// empty reports leave the pointer findings out
	empty := Summarize(s, nil, nil, nil)
	assert.Nil(t, empty.TopGrowth)
	assert.False(t, strings.Contains(empty.String(), "Highest growth"))
}
