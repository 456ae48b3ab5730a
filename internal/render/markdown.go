// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/pdiddy/parts-catalog/pkg/types"
)

// preamble is the fixed description that precedes the table. It never
// depends on the data.
const preamble = "Every part ordered so far, merged across order exports. " +
	"Part numbers link to the vendor's product page."

// WriteMarkdown renders the catalog as a Markdown document and writes it to
// path atomically. The part-number column becomes a link to the product
// page; rows with an empty part number render as plain text.
func WriteMarkdown(path string, table types.Table, cfg types.RenderConfig) error {
	return writeAtomic(path, func(f *os.File) error {
		doc := md.NewMarkdown(f)
		doc.H1("Materials List")
		doc.PlainText(preamble)
		doc.LF()
		doc.Table(md.TableSet{
			Header: escapeCells(table.Columns),
			Rows:   linkedRows(table, cfg.ProductBaseURL),
		})
		return doc.Build()
	})
}

// linkedRows escapes every cell and replaces part numbers with links.
func linkedRows(table types.Table, baseURL string) [][]string {
	partIdx := -1
	for i, col := range table.Columns {
		if col == types.ColPartNumber {
			partIdx = i
		}
	}

	rows := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		cells := escapeCells(row)
		if partIdx >= 0 && partIdx < len(cells) {
			if part := strings.TrimSpace(row[partIdx]); part != "" {
				cells[partIdx] = md.Link(escapeCell(part), PartURL(baseURL, part))
			}
		}
		rows[i] = cells
	}
	return rows
}

// PartURL builds the product-detail URL for a part number.
func PartURL(baseURL, part string) string {
	return fmt.Sprintf("%s/%s.html", strings.TrimRight(baseURL, "/"), part)
}

// cellEscaper neutralizes the characters that would break a Markdown table:
// the cell separator, backslash escapes, and line breaks.
var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = escapeCell(c)
	}
	return out
}
