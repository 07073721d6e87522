package hpi

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/jackc/pgx/stdlib"
)

// All code interacting with a database is here.

// ConnectCH opens a ClickHouse connection. host is the IP address (port 9000
// is assumed).
func ConnectCH(host, user, password, database string) (*sql.DB, error) {
	db := clickhouse.OpenDB(
		&clickhouse.Options{
			Addr: []string{host + ":9000"},
			Auth: clickhouse.Auth{
				Database: database,
				Username: user,
				Password: password,
			},
			DialTimeout: 300 * time.Second,
			Compression: &clickhouse.Compression{
				Method: clickhouse.CompressionLZ4,
				Level:  0,
			},
		})

	if e := db.Ping(); e != nil {
		return nil, e
	}

	return db, nil
}

// ConnectPG opens a Postgres connection via the pgx database/sql driver.
func ConnectPG(host, user, password, dbName string) (*sql.DB, error) {
	connectionStr := fmt.Sprintf("postgres://%s:%s@%s:5432/%s", user, password, host, dbName)

	var (
		db *sql.DB
		e  error
	)
	if db, e = sql.Open("pgx", connectionStr); e != nil {
		return nil, e
	}

	if e = db.Ping(); e != nil {
		return nil, e
	}

	return db, nil
}

// DBLoad runs qry and scans the result into observations. The query must
// return entity, year, value in that order -- value nullable -- optionally
// followed by city and county columns, e.g.
//
//	SELECT statename, year, avg(yearlyindex), city, countyname FROM ... GROUP BY ...
func DBLoad(qry string, db *sql.DB) ([]Observation, error) {
	rows, e := db.Query(qry)
	if e != nil {
		return nil, e
	}
	defer func() { _ = rows.Close() }()

	cols, e := rows.Columns()
	if e != nil {
		return nil, e
	}

	if len(cols) < 3 || len(cols) > 5 {
		return nil, fmt.Errorf("expected 3 to 5 columns (entity, year, value[, city[, county]]), got %d", len(cols))
	}

	var obs []Observation
	for rows.Next() {
		var (
			entity       string
			year         int
			value        sql.NullFloat64
			city, county sql.NullString
		)

		dest := []any{&entity, &year, &value}
		if len(cols) > 3 {
			dest = append(dest, &city)
		}
		if len(cols) > 4 {
			dest = append(dest, &county)
		}

		if e := rows.Scan(dest...); e != nil {
			return nil, &RowError{Row: len(obs), Column: "value", Reason: e.Error()}
		}

		o := Observation{Entity: entity, Year: year, City: city.String, County: county.String}
		if value.Valid {
			v := value.Float64
			o.Value = &v
		}

		obs = append(obs, o)
	}

	return obs, rows.Err()
}
