// Package main implements the portfolio CLI.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/observability"
	"github.com/jonathan/portfolio-cv/internal/rendering"
	"github.com/jonathan/portfolio-cv/internal/schemas"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a rendered document against constraints",
	Long:  "Checks a rendered document for empty sections, bullet caps, broken dates, external assets, forbidden phrases, bullet length and (with --pdf) page count. Without --in the document is rendered from the document options first.",
	RunE:  runValidate,
}

var (
	validateDoc      documentFlags
	validateInput    string
	validatePDF      string
	validateOutput   string
	validateMaxPages int
	validateMaxChars int
)

func init() {
	addDocumentFlags(validateCmd, &validateDoc)
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to rendered HTML document (optional)")
	validateCmd.Flags().StringVar(&validatePDF, "pdf", "", "Path to exported PDF to page-count (optional)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to output Violations JSON file (optional)")
	validateCmd.Flags().IntVar(&validateMaxPages, "max-pages", 0, "Maximum page count (default from config)")
	validateCmd.Flags().IntVar(&validateMaxChars, "max-chars", 0, "Maximum characters per bullet (default from config)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, &validateDoc)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages = validateMaxPages
	}
	if cmd.Flags().Changed("max-chars") {
		cfg.MaxBulletChars = validateMaxChars
	}

	html, err := documentToValidate(cfg)
	if err != nil {
		return err
	}

	violations, err := validation.ValidateDocument(html, validationOptions(cfg, validatePDF))
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			return fmt.Errorf("validation failed: %w", err)
		}
		return fmt.Errorf("failed to validate document: %w", err)
	}

	if validateOutput != "" {
		if err := writeViolations(validateOutput, violations); err != nil {
			return err
		}
	}

	if len(violations.Violations) == 0 {
		_, _ = fmt.Fprintf(os.Stdout, "Validation passed: No violations found\n")
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintViolations(violations)
	if validateOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", validateOutput)
	}

	// Warnings alone do not fail the command
	if violations.HasErrors() {
		return fmt.Errorf("validation found %d violation(s)", len(violations.Violations))
	}
	return nil
}

// documentToValidate reads --in, or renders the configured document.
func documentToValidate(cfg config.Config) (string, error) {
	if validateInput != "" {
		data, err := os.ReadFile(validateInput)
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("document file not found: %s", validateInput)
			}
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		return string(data), nil
	}

	repo, err := loadRepository(cfg)
	if err != nil {
		return "", err
	}
	html, err := rendering.BuildDocumentWithTemplate(repo, cfg.DocumentOptions(), cfg.Template)
	if err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return html, nil
}

func validationOptions(cfg config.Config, pdfPath string) *validation.Options {
	return &validation.Options{
		ForbiddenPhrases: cfg.Forbidden,
		MaxBulletChars:   cfg.MaxBulletChars,
		PDFPath:          pdfPath,
		MaxPages:         cfg.MaxPages,
	}
}

func writeViolations(path string, violations *types.Violations) error {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(violations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal violations to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write violations to output file: %w", err)
	}

	// Validate output against schema (non-fatal)
	if err := schemas.ValidateViolationsJSON(jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Generated violations do not validate against schema: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}
	return nil
}
