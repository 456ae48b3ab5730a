// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk record of one build run: which files were read,
// which were skipped, and what the merge produced. It documents a run; it
// is never read back by the tool.
type Report struct {
	Inputs  []string      `yaml:"inputs"`
	Skipped []string      `yaml:"skipped,omitempty"`
	Summary ReportSummary `yaml:"summary"`
}

// ReportSummary holds the merge statistics and a timestamp.
type ReportSummary struct {
	FilesRead         int       `yaml:"files_read"`
	RowsParsed        int       `yaml:"rows_parsed"`
	DuplicatesRemoved int       `yaml:"duplicates_removed"`
	CatalogRows       int       `yaml:"catalog_rows"`
	Timestamp         time.Time `yaml:"timestamp"`
}

// WriteReport saves a build report to a YAML file.
func WriteReport(path string, report Report) error {
	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
