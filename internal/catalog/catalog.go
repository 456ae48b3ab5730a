// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog turns parsed order exports into the canonical merged
// inventory table: excluded columns dropped, the manufacturer part number
// renamed to its short alias, columns reordered, and exact duplicate rows
// removed.
package catalog

import (
	"strings"

	"github.com/pdiddy/parts-catalog/internal/orders"
	"github.com/pdiddy/parts-catalog/pkg/types"
)

// droppedColumns are vendor export fields that carry no lasting value for a
// component catalog.
var droppedColumns = map[string]bool{
	types.ColCustomerNo: true,
	types.ColDateCode:   true,
	types.ColLeadTime:   true,
}

// rowKeySep separates cell values inside a deduplication key. The unit
// separator does not occur in vendor export data.
const rowKeySep = "\x1f"

// Build merges the parsed files into a single deduplicated table in
// canonical column order. Row order is first-occurrence order across the
// files in the order given, so reruns on unchanged inputs produce an
// identical table. An empty input set yields a header-only table with the
// three canonical columns.
func Build(files []*orders.File) types.Table {
	columns := mergedColumns(files)

	table := types.Table{Columns: columns}
	seen := make(map[string]bool)
	for _, file := range files {
		for _, rec := range file.Records {
			row := makeRow(rec, columns)
			key := strings.Join(row, rowKeySep)
			if seen[key] {
				continue
			}
			seen[key] = true
			table.Rows = append(table.Rows, row)
		}
	}
	return table
}

// Duplicates reports how many rows Build removed from the given files.
func Duplicates(files []*orders.File, table types.Table) int {
	total := 0
	for _, file := range files {
		total += len(file.Records)
	}
	return total - len(table.Rows)
}

// mergedColumns computes the canonical header: the ordered union of every
// file's normalized columns. Files missing a column simply contribute empty
// cells for it, so schema drift across export versions never fails a build.
func mergedColumns(files []*orders.File) []string {
	var columns []string
	present := make(map[string]bool)
	for _, file := range files {
		for _, col := range normalizeColumns(file.Columns) {
			if present[col] {
				continue
			}
			present[col] = true
			columns = append(columns, col)
		}
	}
	if len(columns) == 0 {
		return []string{types.ColPartNumber, types.ColMPNAlias, types.ColDescription}
	}
	return reorder(columns)
}

// normalizeColumns drops the excluded columns and renames the manufacturer
// part number to its short alias, preserving relative order.
func normalizeColumns(header []string) []string {
	out := make([]string, 0, len(header))
	for _, col := range header {
		if droppedColumns[col] {
			continue
		}
		if col == types.ColMPNSource {
			col = types.ColMPNAlias
		}
		out = append(out, col)
	}
	return out
}

// reorder moves the part number, MPN alias, and description to the front,
// in that order, leaving all remaining columns in their original relative
// order. Absent columns are skipped.
func reorder(columns []string) []string {
	front := []string{types.ColPartNumber, types.ColMPNAlias, types.ColDescription}

	out := make([]string, 0, len(columns))
	for _, want := range front {
		for _, col := range columns {
			if col == want {
				out = append(out, col)
			}
		}
	}
	for _, col := range columns {
		isFront := false
		for _, want := range front {
			if col == want {
				isFront = true
			}
		}
		if !isFront {
			out = append(out, col)
		}
	}
	return out
}

// makeRow projects a source record onto the canonical columns. The MPN
// alias reads through to the vendor's verbose column name when the record
// still carries it (fresh exports) and to the alias itself otherwise
// (re-reading an already-normalized table).
func makeRow(rec types.Record, columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		if col == types.ColMPNAlias {
			if v, ok := rec[types.ColMPNSource]; ok {
				row[i] = v
				continue
			}
		}
		row[i] = rec[col]
	}
	return row
}
