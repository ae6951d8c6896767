// Package main implements the portfolio CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/portfolio-cv/internal/export"
	"github.com/jonathan/portfolio-cv/internal/observability"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/validation"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume or CV to PDF",
	Long:  "Renders the chosen document, prints it to PDF in a headless browser and checks the page count. Each export uses its own browser instance, released on every exit path.",
	RunE:  runExport,
}

var (
	exportDoc      documentFlags
	exportOutput   string
	exportTimeout  time.Duration
	exportHTMLOnly bool
	exportMaxPages int
)

func init() {
	addDocumentFlags(exportCmd, &exportDoc)
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to output PDF file (defaults to <out-dir>/<variant>.pdf)")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 0, "Timeout for the whole export (default from config, 30s)")
	exportCmd.Flags().BoolVar(&exportHTMLOnly, "html-only", false, "Load the document in the browser but write HTML instead of printing")
	exportCmd.Flags().IntVar(&exportMaxPages, "max-pages", 0, "Maximum page count (default from config, 0 disables)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, &exportDoc)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages = exportMaxPages
	}

	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	opts := cfg.DocumentOptions()
	ext := "pdf"
	if exportHTMLOnly {
		ext = "html"
	}
	outPath := exportOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.OutputDir, export.FileName(opts, ext))
	}

	timeout := cfg.Timeout(export.DefaultTimeout)
	if cmd.Flags().Changed("timeout") {
		timeout = exportTimeout
	}

	exporter := export.New(repo, nil, cfg.Verbose)
	result, err := exporter.Export(cmd.Context(), export.Options{
		Document:     opts,
		TemplatePath: cfg.Template,
		OutputPath:   outPath,
		SkipPrint:    exportHTMLOnly,
		Timeout:      timeout,
	})
	if err != nil {
		var exportErr *export.ExportError
		if errors.As(err, &exportErr) && exportErr.Stage == export.StageLaunch {
			return fmt.Errorf("export failed (is Chrome or Chromium installed?): %w", err)
		}
		return fmt.Errorf("export failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintExport(result)

	if exportHTMLOnly || cfg.MaxPages <= 0 {
		return nil
	}
	return checkPageCount(printer, result, cfg.MaxPages)
}

// checkPageCount reports a page overflow of an exported PDF. Overflow is an
// error; an undeterminable count is only printed.
func checkPageCount(printer *observability.Printer, result *export.Result, maxPages int) error {
	pages := validation.CountPDFPagesBytes(result.PDF)
	if pages == 0 {
		var err error
		pages, err = validation.CountPDFPages(result.OutputPath)
		if err != nil {
			printer.PrintViolations(&types.Violations{Violations: []types.Violation{{
				Type:     "page_overflow",
				Severity: "warning",
				Details:  fmt.Sprintf("Could not determine page count: %v", err),
			}}})
			return nil
		}
	}

	if pages > maxPages {
		printer.PrintViolations(&types.Violations{Violations: []types.Violation{{
			Type:     "page_overflow",
			Severity: "error",
			Details:  fmt.Sprintf("Document has %d pages, maximum allowed is %d", pages, maxPages),
			Count:    &pages,
			Limit:    &maxPages,
		}}})
		return fmt.Errorf("exported document exceeds %d page(s)", maxPages)
	}
	return nil
}
