// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data and configuration types for the
// parts-catalog pipeline.
package types

// LCSC export column names. These are the fixed header strings produced by
// the vendor's order-export feature.
const (
	ColPartNumber  = "LCSC Part Number"
	ColMPNSource   = "Manufacture Part Number"
	ColMPNAlias    = "MPN"
	ColDescription = "Description"

	ColCustomerNo = "Customer NO."
	ColDateCode   = "Date Code / Lot No."
	ColLeadTime   = "Estimated lead time (business days)"
)

// Record is one order line item, keyed by column name. Values are kept as
// strings exactly as they appear in the export; the pipeline never
// interprets them.
type Record map[string]string

// Table is an ordered set of records sharing one column layout. Rows hold
// cell values positionally, aligned with Columns; a record lacking a column
// contributes an empty cell.
type Table struct {
	// Columns is the header, in output order.
	Columns []string

	// Rows holds one slice of cell values per record, each len(Columns) long.
	Rows [][]string
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}
