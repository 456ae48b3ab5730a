// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/parts-catalog/pkg/types"
)

func TestCompute(t *testing.T) {
	table := types.Table{
		Columns: []string{"LCSC Part Number", "MPN", "Description", "Manufacturer", "Order Qty."},
		Rows: [][]string{
			{"C100", "MPN-A", "cap", "Samsung", "50"},
			{"C200", "MPN-B", "res", "UNI-ROYAL", "100"},
			{"C100", "MPN-A", "cap restock", "Samsung", "25"},
		},
	}

	summary, err := Compute(table)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, 2, summary.DistinctParts)

	require.Len(t, summary.Manufacturers, 2)
	assert.Equal(t, ManufacturerStat{Name: "Samsung", Lines: 2, Qty: 75}, summary.Manufacturers[0])
	assert.Equal(t, ManufacturerStat{Name: "UNI-ROYAL", Lines: 1, Qty: 100}, summary.Manufacturers[1])
}

func TestCompute_MissingColumns(t *testing.T) {
	table := types.Table{
		Columns: []string{"MPN", "Description"},
		Rows: [][]string{
			{"MPN-A", "cap"},
		},
	}

	summary, err := Compute(table)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Rows)
	assert.Equal(t, -1, summary.DistinctParts)
	assert.Empty(t, summary.Manufacturers)
}

func TestCompute_EmptyCatalog(t *testing.T) {
	table := types.Table{Columns: []string{"LCSC Part Number", "MPN", "Description"}}

	summary, err := Compute(table)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Rows)
	assert.Equal(t, 0, summary.DistinctParts)
}

func TestCompute_IgnoresBlankParts(t *testing.T) {
	table := types.Table{
		Columns: []string{"LCSC Part Number", "Description"},
		Rows: [][]string{
			{"C100", "cap"},
			{"", "no part number"},
			{"  ", "whitespace part number"},
		},
	}

	summary, err := Compute(table)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, 1, summary.DistinctParts)
}
