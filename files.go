package hpi

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// All code interacting with files is here.

// Column aliases accepted in a header row, checked in order.
var (
	entityAliases = []string{"entity", "statename", "state", "city"}
	yearAliases   = []string{"year"}
	valueAliases  = []string{"value", "yearlyindex", "index"}
	cityAliases   = []string{"city"}
	countyAliases = []string{"county", "countyname"}
)

// Files reads observations from and writes report tables to CSV files. The
// zero configuration resolves columns by the alias lists above; options pin a
// column to an exact header name.
type Files struct {
	entityField string
	yearField   string
	valueField  string
	cityField   string
	countyField string

	floatFormat string
}

type FileOpt func(f *Files)

// FileEntityField pins the header column read as the entity.
func FileEntityField(name string) FileOpt {
	return func(f *Files) { f.entityField = name }
}

func FileYearField(name string) FileOpt {
	return func(f *Files) { f.yearField = name }
}

func FileValueField(name string) FileOpt {
	return func(f *Files) { f.valueField = name }
}

func FileCityField(name string) FileOpt {
	return func(f *Files) { f.cityField = name }
}

func FileCountyField(name string) FileOpt {
	return func(f *Files) { f.countyField = name }
}

// FileFloatFormat sets the Sprintf verb used when saving float cells.
func FileFloatFormat(format string) FileOpt {
	return func(f *Files) { f.floatFormat = format }
}

func NewFiles(opts ...FileOpt) *Files {
	f := &Files{floatFormat: "%.2f"}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Load reads observations from a CSV with a header row. An empty value cell is
// a missing reading (nil Value); a non-numeric value or year is fatal and
// reported with its row number. City/county columns are optional.
func (f *Files) Load(fileName string) ([]Observation, error) {
	file, e := os.Open(fileName)
	if e != nil {
		return nil, e
	}
	defer func() { _ = file.Close() }()

	rdr := csv.NewReader(file)
	rdr.TrimLeadingSpace = true

	recs, e := rdr.ReadAll()
	if e != nil {
		return nil, e
	}

	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: empty file", fileName)
	}

	header := recs[0]

	entityCol, e := findColumn(header, f.entityField, entityAliases)
	if e != nil {
		return nil, e
	}

	yearCol, e := findColumn(header, f.yearField, yearAliases)
	if e != nil {
		return nil, e
	}

	valueCol, e := findColumn(header, f.valueField, valueAliases)
	if e != nil {
		return nil, e
	}

	// optional dimensions
	cityCol, _ := findColumn(header, f.cityField, cityAliases)
	countyCol, _ := findColumn(header, f.countyField, countyAliases)
	if cityCol == entityCol {
		cityCol = -1
	}

	var obs []Observation
	for ind := 1; ind < len(recs); ind++ {
		rec := recs[ind]

		o := Observation{Entity: rec[entityCol]}

		var ey error
		if o.Year, ey = strconv.Atoi(strings.TrimSpace(rec[yearCol])); ey != nil {
			return nil, &RowError{Row: ind - 1, Column: header[yearCol], Reason: fmt.Sprintf("bad year %q", rec[yearCol])}
		}

		if raw := strings.TrimSpace(rec[valueCol]); raw != "" {
			var (
				v  float64
				ev error
			)
			if v, ev = strconv.ParseFloat(raw, 64); ev != nil {
				return nil, &RowError{Row: ind - 1, Column: header[valueCol], Reason: fmt.Sprintf("non-numeric value %q", raw)}
			}

			o.Value = &v
		}

		if cityCol >= 0 {
			o.City = rec[cityCol]
		}

		if countyCol >= 0 {
			o.County = rec[countyCol]
		}

		obs = append(obs, o)
	}

	return obs, nil
}

// Save writes a report table as CSV. Cells may be string, int, float64,
// *float64 (nil prints empty) or fmt.Stringer.
func (f *Files) Save(fileName string, header []string, rows [][]any) error {
	file, e := os.Create(fileName)
	if e != nil {
		return e
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if e := w.Write(header); e != nil {
		return e
	}

	for _, row := range rows {
		rec := make([]string, len(row))
		for ind, cell := range row {
			rec[ind] = f.formatCell(cell)
		}

		if e := w.Write(rec); e != nil {
			return e
		}
	}

	w.Flush()

	return w.Error()
}

func (f *Files) formatCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return fmt.Sprintf(f.floatFormat, v)
	case *float64:
		if v == nil {
			return ""
		}

		return fmt.Sprintf(f.floatFormat, *v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// findColumn locates a header column. With an exact name the column must
// exist; with aliases a miss returns -1 and an error the caller may ignore
// for optional columns. Matching is case-insensitive.
func findColumn(header []string, exact string, aliases []string) (int, error) {
	if exact != "" {
		for ind, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), exact) {
				return ind, nil
			}
		}

		return -1, fmt.Errorf("required column %s not found in header", exact)
	}

	for _, alias := range aliases {
		for ind, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), alias) {
				return ind, nil
			}
		}
	}

	return -1, fmt.Errorf("no column matching %s found in header", strings.Join(aliases, "/"))
}
