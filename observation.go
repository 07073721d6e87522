// Package hpi computes descriptive reports -- growth, volatility, dispersion,
// rank -- over a long-format (entity, year, value) housing price index series.
// The package is pure computation: CSV, database and chart code lives at the
// edges (Files, DBLoad, Plot, Workbook) and only hands rows in or takes report
// rows out.
package hpi

import (
	"fmt"
	"strings"
)

// Observation is one raw (entity, year, value) data point before aggregation.
// City and County are optional descriptive dimensions used only by Coverage.
// A nil Value is a missing reading and is dropped before aggregation.
type Observation struct {
	Entity string
	City   string
	County string
	Year   int
	Value  *float64
}

// RowError is a fatal input error: a structurally bad row the pipeline will not
// coerce or skip. Row is the 0-based position in the input sequence.
type RowError struct {
	Row    int
	Column string
	Reason string
}

func (r *RowError) Error() string {
	return fmt.Sprintf("row %d, column %s: %s", r.Row, r.Column, r.Reason)
}

// entityKey is the grouping key: entities differing only in case or padding are
// the same series.
func entityKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// entityDisplay is the spelling reported back to the caller.
func entityDisplay(name string) string {
	return strings.TrimSpace(name)
}
