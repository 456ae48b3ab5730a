package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/parts-catalog/internal/render"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge order exports into the combined CSV table",
	Long: `Merge discovers the CSV exports in the orders directory, normalizes their
columns, removes exact duplicate rows, and writes the combined CSV table.
It does not render the Markdown document; use build for the full pipeline.`,
	RunE: runMerge,
}

func init() {
	addBuildFlags(mergeCmd)
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	ordersDir := stringSetting(cmd, "orders-dir", "discovery.orders_dir")
	output := stringSetting(cmd, "output", "output.combined_path")

	table, _, _, err := mergeOrders(ordersDir)
	if err != nil {
		return err
	}

	if err := render.WriteCSV(output, table); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d rows)\n", output, len(table.Rows))
	return nil
}
