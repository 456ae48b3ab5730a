// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the parts-catalog CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the parts-catalog CLI.
var rootCmd = &cobra.Command{
	Use:   "parts-catalog",
	Short: "Consolidate LCSC order exports into a linked parts catalog",
	Long: `parts-catalog merges the CSV order exports in an orders directory into a
single deduplicated inventory table and renders it as a Markdown materials
list with clickable product links.

Each stage is a subcommand: merge concatenates and deduplicates the exports,
render produces the Markdown document from an existing merged table, build
runs both, and stats prints aggregate figures over the merged catalog.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./parts-catalog.yaml or ~/.config/parts-catalog/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("parts-catalog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "parts-catalog"))
		}
	}

	viper.SetEnvPrefix("PARTS_CATALOG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string option: an explicitly set flag wins, then
// the config file / environment, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
