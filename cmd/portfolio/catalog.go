// Package main implements the portfolio CLI.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/portfolio-cv/internal/catalog"
	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/observability"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List project cards",
	Long:  "Filters the project catalog by category and free-text query, sorts it and prints the visible cards as a table or JSON.",
	RunE:  runCatalog,
}

var (
	catalogCategory string
	catalogQuery    string
	catalogSort     string
	catalogJSON     bool
)

func init() {
	catalogCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "Category: all, research, lab, project, ds, cs, marketing, nanofab")
	catalogCmd.Flags().StringVarP(&catalogQuery, "query", "q", "", "Free-text search over title, tags, blurb and details")
	catalogCmd.Flags().StringVarP(&catalogSort, "sort", "s", "", "Sort: relevance, date_desc, date_asc, title_asc, title_desc")
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("category") {
		cfg.Category = catalogCategory
	}
	if cmd.Flags().Changed("sort") {
		cfg.Sort = catalogSort
	}

	state, err := catalogState(cfg, catalogQuery)
	if err != nil {
		return err
	}

	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	return printCatalog(os.Stdout, repo, state, catalogJSON)
}

// catalogState builds the catalog state from config defaults and a query.
func catalogState(cfg config.Config, query string) (catalog.State, error) {
	category, err := catalog.ParseCategory(cfg.Category)
	if err != nil {
		return catalog.State{}, err
	}
	mode, err := catalog.ParseSortMode(cfg.Sort)
	if err != nil {
		return catalog.State{}, err
	}

	state := catalog.InitialState()
	state = catalog.Reduce(state, catalog.SetCategory{Category: category})
	state = catalog.Reduce(state, catalog.SetSort{Sort: mode})
	state = catalog.Reduce(state, catalog.SetQuery{Query: query})
	return state, nil
}

func printCatalog(w io.Writer, repo *types.Repository, state catalog.State, asJSON bool) error {
	summaries := catalog.Summarize(catalog.Visible(repo, state), state.Query)

	if !asJSON {
		observability.NewPrinter(w).PrintCatalog(state, summaries)
		return nil
	}

	if summaries == nil {
		summaries = []catalog.Summary{}
	}
	jsonBytes, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog to JSON: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s\n", jsonBytes)
	return nil
}
