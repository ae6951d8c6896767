// Package main provides the entry point for the portfolio CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio resume and CV generator",
	Long:  "Portfolio selects, renders, validates and exports resume and CV variants from a single portfolio repository, and serves a browsable project catalog.",
}

var (
	rootConfigPath string
	rootDataPath   string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().StringVar(&rootDataPath, "data", "", "Path to portfolio repository JSON/YAML (defaults to $PORTFOLIO_DATA, then the embedded repository)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
