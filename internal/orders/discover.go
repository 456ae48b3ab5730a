// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orders discovers and parses LCSC order-export CSV files.
package orders

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// csvExt is the only extension recognized as a vendor export.
const csvExt = ".csv"

// Discover returns the CSV files directly under dir, sorted by filename so
// successive runs read inputs in the same order. A missing or empty
// directory is not an error: Discover prints a warning to w and returns an
// empty slice.
func Discover(dir string, w io.Writer) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: orders directory %s does not exist; nothing to merge\n", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("reading orders directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), csvExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		fmt.Fprintf(w, "warning: no CSV files found in %s\n", dir)
	}
	return paths, nil
}
