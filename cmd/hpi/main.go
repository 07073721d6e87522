// Command hpi runs the full report pipeline over a housing index CSV (or a
// ClickHouse/Postgres table) and writes tidy CSVs, a summary and, optionally,
// charts and an xlsx workbook to the output directory.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hpanalytics/hpi"
)

func main() {
	var (
		dataPath = flag.String("data", "data/home_values_yearly_clean.csv", "input CSV")
		entity   = flag.String("entity", "", "header column to group by (default: entity/statename/city aliases)")
		outDir   = flag.String("out", "reports", "output directory")

		fromYear = flag.Int("from", 2000, "growth endpoint year A")
		toYear   = flag.Int("to", 2025, "growth endpoint year B")
		topN     = flag.Int("top", 5, "rows kept in the growth report")
		minYears = flag.Int("minyears", 10, "minimum qualifying YoY observations for volatility")
		topK     = flag.Int("topk", 5, "rank threshold for consistency")
		minQual  = flag.Int("minqual", 10, "minimum qualifying years for consistency")

		charts = flag.Bool("charts", false, "write HTML charts")
		xlsx   = flag.Bool("xlsx", false, "write an xlsx workbook")

		dbKind  = flag.String("db", "", "load from a database instead of CSV: clickhouse or postgres")
		dbQuery = flag.String("query", "", "query returning entity, year, value[, city[, county]]")
	)
	flag.Parse()

	if e := os.MkdirAll(*outDir, 0o755); e != nil {
		log.Fatalln(e)
	}

	obs, e := load(*dataPath, *entity, *dbKind, *dbQuery)
	if e != nil {
		log.Fatalln(e)
	}

	series, e := hpi.Aggregate(obs)
	if e != nil {
		log.Fatalln(e)
	}

	files := hpi.NewFiles()
	save := func(name string, header []string, cells [][]any) {
		out := filepath.Join(*outDir, name)
		if e := files.Save(out, header, cells); e != nil {
			log.Fatalln(e)
		}

		fmt.Println("wrote", out)
	}

	growth := hpi.Growth(series, *fromYear, *toYear, false)
	if len(growth) > *topN {
		growth = growth[:*topN]
	}
	gHeader, gCells := hpi.GrowthTable(growth, *fromYear, *toYear)
	save("growth.csv", gHeader, gCells)

	volatility := hpi.Volatility(series, *minYears)
	vHeader, vCells := hpi.VolatilityTable(volatility)
	save("volatility.csv", vHeader, vCells)

	dispersion := hpi.Dispersion(series, series.Years())
	dHeader, dCells := hpi.DispersionTable(dispersion)
	save("dispersion.csv", dHeader, dCells)

	consistency := hpi.Consistency(hpi.RankPerYear(series), *topK, *minQual, *topN)
	tHeader, tCells := hpi.ConsistencyTable(consistency.Top)
	save("top_consistent.csv", tHeader, tCells)
	bHeader, bCells := hpi.ConsistencyTable(consistency.Bottom)
	save("bottom_consistent.csv", bHeader, bCells)

	coverage := hpi.Coverage(obs)
	cHeader, cCells := hpi.CoverageTable(coverage)
	save("coverage.csv", cHeader, cCells)

	pivot := hpi.Pivot(series, topEntities(growth), nil)
	pHeader, pCells := pivot.Table()
	save("pivot.csv", pHeader, pCells)

	if e := writeSummary(*outDir, series, growth, dispersion, coverage, *fromYear, *toYear); e != nil {
		log.Fatalln(e)
	}

	if *charts {
		writeCharts(*outDir, growth, pivot, *fromYear, *toYear)
	}

	if *xlsx {
		writeWorkbook(*outDir, gHeader, gCells, vHeader, vCells, dHeader, dCells, cHeader, cCells, pHeader, pCells)
	}
}

func load(dataPath, entity, dbKind, dbQuery string) ([]hpi.Observation, error) {
	if dbKind == "" {
		var opts []hpi.FileOpt
		if entity != "" {
			opts = append(opts, hpi.FileEntityField(entity))
		}

		return hpi.NewFiles(opts...).Load(dataPath)
	}

	if dbQuery == "" {
		return nil, fmt.Errorf("-query is required with -db")
	}

	// connection settings come from the environment
	var (
		db *sql.DB
		e  error
	)
	switch dbKind {
	case "clickhouse":
		db, e = hpi.ConnectCH(os.Getenv("host"), os.Getenv("user"), os.Getenv("password"), os.Getenv("database"))
	case "postgres":
		db, e = hpi.ConnectPG(os.Getenv("host"), os.Getenv("user"), os.Getenv("password"), os.Getenv("database"))
	default:
		return nil, fmt.Errorf("unknown database %s", dbKind)
	}

	if e != nil {
		return nil, e
	}
	defer func() { _ = db.Close() }()

	return hpi.DBLoad(dbQuery, db)
}

func topEntities(growth []hpi.GrowthRow) []string {
	var out []string
	for _, r := range growth {
		out = append(out, r.Entity)
	}

	return out
}

func writeSummary(outDir string, series *hpi.Series, growth []hpi.GrowthRow, dispersion []hpi.DispersionRow,
	coverage []hpi.CoverageRow, fromYear, toYear int) error {
	summary := hpi.Summarize(series, growth, dispersion, coverage)

	text := summary.String()
	if trend, e := hpi.Trend(series, fromYear, toYear); e == nil {
		text += fmt.Sprintf("- Gap %d vs %d: %s\n", fromYear, toYear, trend)
	}

	out := filepath.Join(outDir, "summary.txt")
	if e := os.WriteFile(out, []byte(text), 0o644); e != nil {
		return e
	}

	fmt.Println("wrote", out)

	return nil
}

func writeCharts(outDir string, growth []hpi.GrowthRow, pivot *hpi.PivotTable, fromYear, toYear int) {
	span := strconv.Itoa(fromYear) + "-" + strconv.Itoa(toYear)

	bar := hpi.NewPlot(
		hpi.WithTitle("Growth "+span),
		hpi.WithXlabel("Entity"),
		hpi.WithYlabel("Growth (%)"),
	)
	bar.GrowthBars(growth, "#2E7D32")

	out := filepath.Join(outDir, "growth.html")
	if e := bar.Save(out); e != nil {
		log.Fatalln(e)
	}
	fmt.Println("wrote", out)

	lines := hpi.NewPlot(
		hpi.WithTitle("Average index by year"),
		hpi.WithXlabel("Year"),
		hpi.WithYlabel("Average index"),
		hpi.WithLegend(true),
	)
	lines.PivotLines(pivot)

	out = filepath.Join(outDir, "pivot.html")
	if e := lines.Save(out); e != nil {
		log.Fatalln(e)
	}
	fmt.Println("wrote", out)
}

func writeWorkbook(outDir string, gHeader []string, gCells [][]any, vHeader []string, vCells [][]any,
	dHeader []string, dCells [][]any, cHeader []string, cCells [][]any, pHeader []string, pCells [][]any) {
	wb := hpi.NewWorkbook()

	sheets := []struct {
		name   string
		header []string
		cells  [][]any
	}{
		{"Growth", gHeader, gCells},
		{"Volatility", vHeader, vCells},
		{"Dispersion", dHeader, dCells},
		{"Coverage", cHeader, cCells},
		{"Pivot", pHeader, pCells},
	}

	for _, sh := range sheets {
		if e := wb.AddSheet(sh.name, sh.header, sh.cells); e != nil {
			log.Fatalln(e)
		}
	}

	out := filepath.Join(outDir, "report.xlsx")
	if e := wb.Save(out); e != nil {
		log.Fatalln(e)
	}
	fmt.Println("wrote", out)
}
