// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	report := Report{
		Inputs:  []string{"orders/a.csv", "orders/b.csv"},
		Skipped: []string{"orders/broken.csv"},
		Summary: ReportSummary{
			FilesRead:         2,
			RowsParsed:        10,
			DuplicatesRemoved: 1,
			CatalogRows:       9,
			Timestamp:         time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, WriteReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, report.Inputs, got.Inputs)
	assert.Equal(t, report.Skipped, got.Skipped)
	assert.Equal(t, 9, got.Summary.CatalogRows)
	assert.Equal(t, 1, got.Summary.DuplicatesRemoved)
}

func TestWriteReport_BadPath(t *testing.T) {
	err := WriteReport(filepath.Join(t.TempDir(), "missing", "report.yaml"), Report{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report")
}
