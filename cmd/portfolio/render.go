// Package main implements the portfolio CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/jonathan/portfolio-cv/internal/export"
	"github.com/jonathan/portfolio-cv/internal/observability"
	"github.com/jonathan/portfolio-cv/internal/rendering"
	"github.com/jonathan/portfolio-cv/internal/selection"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume or CV to HTML",
	Long:  "Selects content for the chosen document options and renders a self-contained printable HTML document. With --all every document variant is rendered into the output directory.",
	RunE:  runRender,
}

var (
	renderDoc    documentFlags
	renderOutput string
	renderAll    bool
	renderOutDir string
)

func init() {
	addDocumentFlags(renderCmd, &renderDoc)
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output HTML file (defaults to <out-dir>/<variant>.html)")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every document variant")
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", "", "Output directory for rendered documents")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, &renderDoc)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutputDir = renderOutDir
	}

	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	if renderAll {
		paths, err := renderVariants(cmd.Context(), repo, cfg.Template, cfg.OutputDir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			_, _ = fmt.Fprintf(os.Stdout, "Rendered %s\n", p)
		}
		return nil
	}

	opts := cfg.DocumentOptions()
	if cfg.Verbose {
		sel, err := selection.Select(repo, opts)
		if err != nil {
			return fmt.Errorf("failed to select content: %w", err)
		}
		observability.NewPrinter(os.Stderr).PrintSelection(sel)
	}

	html, err := rendering.BuildDocumentWithTemplate(repo, opts, cfg.Template)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	outPath := renderOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.OutputDir, export.FileName(opts, "html"))
	}
	if err := writeDocument(outPath, html); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Rendered %s to %s\n", rendering.ConfigTitle(opts), outPath)
	return nil
}

// documentVariants lists every distinct document configuration: the CV plus a
// resume for each domain focus and audience.
func documentVariants() []types.Options {
	variants := []types.Options{{DocumentType: types.DocumentCV}}
	for _, focus := range []types.DomainFocus{types.FocusDataScience, types.FocusNanotech} {
		for _, audience := range []types.Audience{types.AudienceAcademic, types.AudienceIndustry, types.AudienceAll} {
			variants = append(variants, types.Options{
				DocumentType: types.DocumentResume,
				DomainFocus:  focus,
				Audience:     audience,
			})
		}
	}
	for i := range variants {
		variants[i] = variants[i].WithDefaults()
	}
	return variants
}

// renderVariants renders every document variant into dir concurrently and
// returns the written paths in variant order.
func renderVariants(ctx context.Context, repo *types.Repository, templatePath, dir string) ([]string, error) {
	variants := documentVariants()
	paths := make([]string, len(variants))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, opts := range variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			html, err := rendering.BuildDocumentWithTemplate(repo, opts, templatePath)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", rendering.ConfigTitle(opts), err)
			}
			path := filepath.Join(dir, export.FileName(opts, "html"))
			if err := writeDocument(path, html); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("[RENDER] Rendered %d variants into %s", len(paths), dir)
	return paths, nil
}

func writeDocument(path, html string) error {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
