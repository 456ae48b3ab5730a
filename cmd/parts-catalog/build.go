package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/parts-catalog/internal/catalog"
	"github.com/pdiddy/parts-catalog/internal/orders"
	"github.com/pdiddy/parts-catalog/internal/render"
	"github.com/pdiddy/parts-catalog/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Merge order exports and render the materials list",
	Long: `Build runs the full pipeline: it discovers the CSV exports in the orders
directory, merges them into a deduplicated catalog, writes the combined CSV
table, and renders the Markdown materials list with product links.

Malformed export files are skipped with a warning; a missing or empty orders
directory produces header-only outputs.`,
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd)
	buildCmd.Flags().String("readme", types.DefaultReadmePath, "path for the rendered Markdown document")
	buildCmd.Flags().String("base-url", types.DefaultProductBaseURL, "base URL for part links")
	buildCmd.Flags().String("report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(buildCmd)
}

// addBuildFlags registers the flags shared by build and merge.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().String("orders-dir", types.DefaultOrdersDir, "directory containing vendor CSV exports")
	cmd.Flags().String("output", types.DefaultCombinedPath, "path for the merged CSV table")
}

// buildConfig resolves the build configuration from flags, config file, and
// environment.
func buildConfig(cmd *cobra.Command) types.BuildConfig {
	return types.BuildConfig{
		Discovery: types.DiscoveryConfig{
			OrdersDir: stringSetting(cmd, "orders-dir", "discovery.orders_dir"),
		},
		Output: types.OutputConfig{
			CombinedPath: stringSetting(cmd, "output", "output.combined_path"),
			ReadmePath:   stringSetting(cmd, "readme", "output.readme_path"),
		},
		Render: types.RenderConfig{
			ProductBaseURL: stringSetting(cmd, "base-url", "render.product_base_url"),
		},
		ReportPath: stringSetting(cmd, "report", "report_path"),
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)

	table, files, skipped, err := mergeOrders(cfg.Discovery.OrdersDir)
	if err != nil {
		return err
	}

	if err := render.WriteCSV(cfg.Output.CombinedPath, table); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d rows)\n", cfg.Output.CombinedPath, len(table.Rows))

	if err := render.WriteMarkdown(cfg.Output.ReadmePath, table, cfg.Render); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", cfg.Output.ReadmePath)

	if cfg.ReportPath != "" {
		report := buildReport(files, skipped, table)
		if err := catalog.WriteReport(cfg.ReportPath, report); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", cfg.ReportPath)
	}
	return nil
}

// mergeOrders runs discovery, parsing, and the merge. Warnings go to
// stderr; parse failures skip the file rather than aborting the run.
func mergeOrders(ordersDir string) (types.Table, []*orders.File, []string, error) {
	paths, err := orders.Discover(ordersDir, os.Stderr)
	if err != nil {
		return types.Table{}, nil, nil, err
	}

	files, skipped := orders.ParseAll(paths, os.Stderr)
	table := catalog.Build(files)
	return table, files, skipped, nil
}

func buildReport(files []*orders.File, skipped []string, table types.Table) catalog.Report {
	inputs := make([]string, len(files))
	rows := 0
	for i, f := range files {
		inputs[i] = f.Path
		rows += len(f.Records)
	}
	return catalog.Report{
		Inputs:  inputs,
		Skipped: skipped,
		Summary: catalog.ReportSummary{
			FilesRead:         len(files),
			RowsParsed:        rows,
			DuplicatesRemoved: catalog.Duplicates(files, table),
			CatalogRows:       len(table.Rows),
			Timestamp:         time.Now(),
		},
	}
}
