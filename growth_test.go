package hpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowth(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 100), ob("CA", 2025, 400),
		ob("NV", 2000, 100), ob("NV", 2025, 500),
	})

	rows := Growth(s, 2000, 2025, false)
	assert.Equal(t, 2, len(rows))

	// descending: NV (400%) before CA (300%)
	assert.Equal(t, "NV", rows[0].Entity)
	assert.Equal(t, 400.0, rows[0].PctChange)
	assert.Equal(t, "CA", rows[1].Entity)
	assert.Equal(t, 300.0, rows[1].PctChange)

	rows = Growth(s, 2000, 2025, true)
	assert.Equal(t, "CA", rows[0].Entity)
	assert.Equal(t, "NV", rows[1].Entity)
}

func TestGrowth_rounding(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("CA", 2000, 3), ob("CA", 2025, 4),
	})

	rows := Growth(s, 2000, 2025, false)
	assert.Equal(t, 1, len(rows))

	// (4-3)/3*100 = 33.333... -> 33.33 at the boundary
	assert.Equal(t, 33.33, rows[0].PctChange)
	assert.Equal(t, 3.0, rows[0].ValueA)
	assert.Equal(t, 4.0, rows[0].ValueB)
}

func TestGrowth_exclusions(t *testing.T) {
	s := makeSeries(t, []Observation{
		// missing 2025 endpoint
		ob("AZ", 2000, 100),
		// zero baseline
		ob("OR", 2000, 0), ob("OR", 2025, 50),
		ob("WA", 2000, 100), ob("WA", 2025, 150),
	})

	rows := Growth(s, 2000, 2025, false)
	assert.Equal(t, 1, len(rows))
	assert.Equal(t, "WA", rows[0].Entity)
	assert.Equal(t, 50.0, rows[0].PctChange)
}

func TestGrowth_tieBreak(t *testing.T) {
	s := makeSeries(t, []Observation{
		ob("NV", 2000, 100), ob("NV", 2025, 200),
		ob("CA", 2000, 50), ob("CA", 2025, 100),
	})

	// identical pct change: entity name ascending
	rows := Growth(s, 2000, 2025, false)
	assert.Equal(t, "CA", rows[0].Entity)
	assert.Equal(t, "NV", rows[1].Entity)

	rows = Growth(s, 2000, 2025, true)
	assert.Equal(t, "CA", rows[0].Entity)
	assert.Equal(t, "NV", rows[1].Entity)
}
