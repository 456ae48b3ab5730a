package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/parts-catalog/internal/catalog"
	"github.com/pdiddy/parts-catalog/internal/orders"
	"github.com/pdiddy/parts-catalog/internal/render"
	"github.com/pdiddy/parts-catalog/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the Markdown materials list from the combined table",
	Long: `Render reads an existing combined CSV table and writes the Markdown
materials list with product links. Use it to regenerate the document without
re-reading the order exports.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("input", types.DefaultCombinedPath, "path of the merged CSV table")
	renderCmd.Flags().String("readme", types.DefaultReadmePath, "path for the rendered Markdown document")
	renderCmd.Flags().String("base-url", types.DefaultProductBaseURL, "base URL for part links")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	input := stringSetting(cmd, "input", "output.combined_path")
	readme := stringSetting(cmd, "readme", "output.readme_path")
	cfg := types.RenderConfig{
		ProductBaseURL: stringSetting(cmd, "base-url", "render.product_base_url"),
	}

	file, err := orders.Parse(input)
	if err != nil {
		return err
	}
	table := catalog.Build([]*orders.File{file})

	if err := render.WriteMarkdown(readme, table, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d rows)\n", readme, len(table.Rows))
	return nil
}
