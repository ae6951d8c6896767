// Package main implements the portfolio CLI.
package main

import (
	"fmt"

	"github.com/jonathan/portfolio-cv/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the project catalog interactively",
	Long:  "Opens a terminal browser over the project catalog: category tabs, live search, sorting and a detail view with an image gallery.",
	RunE:  runBrowse,
}

var browseQuery string

func init() {
	browseCmd.Flags().StringVarP(&browseQuery, "query", "q", "", "Initial search query")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	state, err := catalogState(cfg, browseQuery)
	if err != nil {
		return err
	}

	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	if err := tui.Run(repo, state); err != nil {
		return fmt.Errorf("catalog browser failed: %w", err)
	}
	return nil
}
