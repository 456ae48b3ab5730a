// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes the two build artifacts: the merged CSV table and
// the Markdown materials list.
package render

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/parts-catalog/pkg/types"
)

// WriteCSV writes the catalog as a comma-separated file with a header row.
// The file is written to a temporary sibling and renamed into place, so an
// interrupted run never leaves a truncated combined.csv behind.
func WriteCSV(path string, table types.Table) error {
	return writeAtomic(path, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(table.Columns); err != nil {
			return err
		}
		for _, row := range table.Rows {
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
}

// writeAtomic creates a temp file next to path, lets write fill it, and
// renames it over path.
func writeAtomic(path string, write func(f *os.File) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
