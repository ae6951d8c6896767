// Package main implements the portfolio CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/portfolio-cv/internal/content"
	"github.com/jonathan/portfolio-cv/internal/schemas"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/spf13/cobra"
)

var checkDataCmd = &cobra.Command{
	Use:   "check-data",
	Short: "Check a portfolio repository file",
	Long:  "Validates a portfolio repository file against the portfolio schema, normalizes it and prints a summary of its content.",
	RunE:  runCheckData,
}

func init() {
	rootCmd.AddCommand(checkDataCmd)
}

func runCheckData(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	source := cfg.Data
	if source == "" {
		source = "embedded repository"
	}

	repo, err := content.LoadOrDefault(cfg.Data)
	if err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			_, _ = fmt.Fprintf(os.Stdout, "%s does not match the portfolio schema:\n", source)
			for _, fe := range schemaErr.Errors {
				_, _ = fmt.Fprintf(os.Stdout, "  - %s: %s\n", fe.Field, fe.Message)
			}
		}
		return fmt.Errorf("repository check failed: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s is valid\n", source)
	_, _ = fmt.Fprintf(os.Stdout, "  Person:     %s\n", repo.Person.Name)
	_, _ = fmt.Fprintf(os.Stdout, "  Education:  %d\n", len(repo.Education))
	_, _ = fmt.Fprintf(os.Stdout, "  Coursework: %d\n", len(repo.Coursework))
	_, _ = fmt.Fprintf(os.Stdout, "  Experience: %d\n", len(repo.Experience))
	_, _ = fmt.Fprintf(os.Stdout, "  Skills:     %d categories\n", len(repo.Skills))
	_, _ = fmt.Fprintf(os.Stdout, "  Research:   %d\n", len(repo.CardsOfKind(types.KindResearch)))
	_, _ = fmt.Fprintf(os.Stdout, "  Labs:       %d\n", len(repo.CardsOfKind(types.KindLab)))
	_, _ = fmt.Fprintf(os.Stdout, "  Projects:   %d\n", len(repo.CardsOfKind(types.KindProject)))
	return nil
}
