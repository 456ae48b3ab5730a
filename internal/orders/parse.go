// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orders

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/parts-catalog/pkg/types"
)

// File holds the parsed contents of one order export: the header in source
// order and one record per data row.
type File struct {
	// Path is the source file, kept for error reporting.
	Path string

	// Columns is the header row in its original order.
	Columns []string

	// Records holds the data rows, keyed by column name.
	Records []types.Record
}

// Parse reads a single vendor CSV export. The first row is the header;
// every following row becomes a record. Rows shorter than the header are
// padded with empty values, longer rows are truncated — the vendor's export
// feature occasionally emits trailing commas and this should not lose the
// rest of the file.
func Parse(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: file is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: reading header: %w", path, err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("%s: header row has no columns", path)
	}

	file := &File{Path: path, Columns: header}
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, line, err)
		}

		rec := make(types.Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		file.Records = append(file.Records, rec)
	}

	return file, nil
}

// ParseAll parses every path, skipping files that fail to parse. Each skip
// prints a warning to w naming the file and the reason; the skipped paths
// are returned alongside the successfully parsed files so callers can
// report them.
func ParseAll(paths []string, w io.Writer) (files []*File, skipped []string) {
	for _, path := range paths {
		file, err := Parse(path)
		if err != nil {
			fmt.Fprintf(w, "warning: skipping file: %v\n", err)
			skipped = append(skipped, path)
			continue
		}
		files = append(files, file)
	}
	return files, skipped
}
