// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats computes aggregate figures over a merged catalog by loading
// it into an in-memory SQLite database. Nothing touches disk; the catalog
// lifecycle stays a pure function of the order exports.
package stats

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/parts-catalog/pkg/types"
)

// Vendor columns consulted for aggregates. Their absence disables the
// corresponding figure rather than failing the run.
const (
	colManufacturer = "Manufacturer"
	colOrderQty     = "Order Qty."
)

// ManufacturerStat holds per-manufacturer totals.
type ManufacturerStat struct {
	Name  string
	Lines int
	Qty   int64
}

// Summary holds the aggregate figures for one catalog.
type Summary struct {
	// Rows is the number of catalog rows.
	Rows int

	// DistinctParts counts distinct part numbers, or -1 when the part
	// number column is absent.
	DistinctParts int

	// Manufacturers lists per-manufacturer totals, most lines first. Empty
	// when the manufacturer column is absent.
	Manufacturers []ManufacturerStat
}

// Compute loads the catalog into an in-memory SQLite table and runs the
// aggregate queries against it.
func Compute(table types.Table) (*Summary, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	defer db.Close()

	if err := load(db, table); err != nil {
		return nil, err
	}

	summary := &Summary{DistinctParts: -1}
	if err := db.QueryRow(`SELECT COUNT(*) FROM catalog`).Scan(&summary.Rows); err != nil {
		return nil, fmt.Errorf("counting rows: %w", err)
	}

	if hasColumn(table, types.ColPartNumber) {
		q := fmt.Sprintf(`SELECT COUNT(DISTINCT %s) FROM catalog WHERE TRIM(%s) != ''`,
			quoteIdent(types.ColPartNumber), quoteIdent(types.ColPartNumber))
		if err := db.QueryRow(q).Scan(&summary.DistinctParts); err != nil {
			return nil, fmt.Errorf("counting distinct parts: %w", err)
		}
	}

	if hasColumn(table, colManufacturer) {
		stats, err := manufacturerStats(db, hasColumn(table, colOrderQty))
		if err != nil {
			return nil, err
		}
		summary.Manufacturers = stats
	}

	return summary, nil
}

// load creates the catalog table with one TEXT column per catalog column
// and inserts every row.
func load(db *sql.DB, table types.Table) error {
	cols := make([]string, len(table.Columns))
	holes := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		cols[i] = quoteIdent(col) + " TEXT"
		holes[i] = "?"
	}

	create := fmt.Sprintf(`CREATE TABLE catalog (%s)`, strings.Join(cols, ", "))
	if _, err := db.Exec(create); err != nil {
		return fmt.Errorf("creating catalog table: %w", err)
	}

	insert := fmt.Sprintf(`INSERT INTO catalog VALUES (%s)`, strings.Join(holes, ", "))
	stmt, err := db.Prepare(insert)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range table.Rows {
		args := make([]any, len(table.Columns))
		for i := range table.Columns {
			if i < len(row) {
				args[i] = row[i]
			} else {
				args[i] = ""
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting row: %w", err)
		}
	}
	return nil
}

func manufacturerStats(db *sql.DB, withQty bool) ([]ManufacturerStat, error) {
	qtyExpr := "0"
	if withQty {
		qtyExpr = fmt.Sprintf(`COALESCE(SUM(CAST(%s AS INTEGER)), 0)`, quoteIdent(colOrderQty))
	}
	q := fmt.Sprintf(
		`SELECT %s, COUNT(*), %s FROM catalog GROUP BY %s ORDER BY COUNT(*) DESC, %s`,
		quoteIdent(colManufacturer), qtyExpr, quoteIdent(colManufacturer), quoteIdent(colManufacturer))

	rows, err := db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("querying manufacturer totals: %w", err)
	}
	defer rows.Close()

	var stats []ManufacturerStat
	for rows.Next() {
		var s ManufacturerStat
		if err := rows.Scan(&s.Name, &s.Lines, &s.Qty); err != nil {
			return nil, fmt.Errorf("scanning manufacturer totals: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func hasColumn(table types.Table, name string) bool {
	for _, col := range table.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// quoteIdent wraps a column name for use as a SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
