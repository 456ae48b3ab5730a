// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DiscoveryConfig holds settings for locating order-export files.
type DiscoveryConfig struct {
	// OrdersDir is the directory scanned for vendor CSV exports (default "orders").
	OrdersDir string `json:"orders_dir" yaml:"orders_dir"`
}

// OutputConfig holds the destinations for the two generated artifacts.
type OutputConfig struct {
	// CombinedPath is the merged CSV output path (default "combined.csv").
	CombinedPath string `json:"combined_path" yaml:"combined_path"`

	// ReadmePath is the rendered Markdown output path (default "README.md").
	ReadmePath string `json:"readme_path" yaml:"readme_path"`
}

// RenderConfig holds settings for the Markdown document.
type RenderConfig struct {
	// ProductBaseURL is the base for part hyperlinks
	// (default "https://www.lcsc.com/product-detail").
	ProductBaseURL string `json:"product_base_url" yaml:"product_base_url"`
}

// BuildConfig groups all settings for a catalog build run.
type BuildConfig struct {
	Discovery DiscoveryConfig `json:"discovery" yaml:"discovery"`
	Output    OutputConfig    `json:"output" yaml:"output"`
	Render    RenderConfig    `json:"render" yaml:"render"`

	// ReportPath, when non-empty, is where the YAML run report is written.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// Default paths and URL, matching the conventional repository layout.
const (
	DefaultOrdersDir      = "orders"
	DefaultCombinedPath   = "combined.csv"
	DefaultReadmePath     = "README.md"
	DefaultProductBaseURL = "https://www.lcsc.com/product-detail"
)
