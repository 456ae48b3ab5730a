package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pdiddy/parts-catalog/internal/catalog"
	"github.com/pdiddy/parts-catalog/internal/orders"
	"github.com/pdiddy/parts-catalog/internal/stats"
	"github.com/pdiddy/parts-catalog/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate figures over the combined catalog",
	Long: `Stats reads the combined CSV table, loads it into an in-memory SQLite
database, and prints row and part counts plus per-manufacturer totals.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().String("input", types.DefaultCombinedPath, "path of the merged CSV table")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	input := stringSetting(cmd, "input", "output.combined_path")

	file, err := orders.Parse(input)
	if err != nil {
		return err
	}
	table := catalog.Build([]*orders.File{file})

	summary, err := stats.Compute(table)
	if err != nil {
		return err
	}

	fmt.Printf("Catalog rows:   %d\n", summary.Rows)
	if summary.DistinctParts >= 0 {
		fmt.Printf("Distinct parts: %d\n", summary.DistinctParts)
	}

	if len(summary.Manufacturers) == 0 {
		return nil
	}

	fmt.Println()
	tw := tablewriter.NewTable(os.Stdout)
	tw.Header("Manufacturer", "Lines", "Qty")
	for _, m := range summary.Manufacturers {
		if err := tw.Append(m.Name, fmt.Sprintf("%d", m.Lines), fmt.Sprintf("%d", m.Qty)); err != nil {
			return err
		}
	}
	return tw.Render()
}
