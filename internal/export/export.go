// Package export turns rendered documents into printable PDF files.
//
// Every run acquires its own render target (a headless browser tab), loads the
// document, prints it and releases the target on every exit path, including
// failures and timeouts. Runs share nothing but the read-only repository, so
// concurrent exports are independent.
package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-cv/internal/rendering"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// DefaultTimeout bounds one export run.
const DefaultTimeout = 30 * time.Second

// Target is a transient render surface holding one document.
type Target interface {
	Load(ctx context.Context, html string) error
	Print(ctx context.Context) ([]byte, error)
	Close()
}

// Launcher acquires a fresh Target for one run.
type Launcher interface {
	Launch(ctx context.Context) (Target, error)
}

// Options configures one export run.
type Options struct {
	Document     types.Options
	TemplatePath string
	// OutputPath receives the PDF (or the HTML when SkipPrint is set). Empty keeps the result in memory.
	OutputPath string
	// SkipPrint loads the document into the target but does not print it.
	SkipPrint bool
	Timeout   time.Duration
}

// Result describes a finished run.
type Result struct {
	RunID      string
	Title      string
	HTML       string
	PDF        []byte
	OutputPath string
	Duration   time.Duration
}

// Exporter builds documents from a repository and prints them.
type Exporter struct {
	repo     *types.Repository
	launcher Launcher
	verbose  bool
}

// New creates an Exporter. A nil launcher uses headless Chrome.
func New(repo *types.Repository, launcher Launcher, verbose bool) *Exporter {
	if launcher == nil {
		launcher = ChromeLauncher{Verbose: verbose}
	}
	return &Exporter{repo: repo, launcher: launcher, verbose: verbose}
}

// Export runs one export: build the document, acquire a target, load, print,
// release. The target is released even when loading or printing fails.
func (e *Exporter) Export(ctx context.Context, opts Options) (*Result, error) {
	runID := uuid.New().String()
	start := time.Now()
	docOpts := opts.Document.WithDefaults()

	if e.verbose {
		log.Printf("[EXPORT] Run %s: %s", runID, rendering.ConfigTitle(docOpts))
	}

	html, err := rendering.BuildDocumentWithTemplate(e.repo, docOpts, opts.TemplatePath)
	if err != nil {
		return nil, &ExportError{RunID: runID, Stage: StageBuild, Message: "failed to build document", Cause: err}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target, err := e.launcher.Launch(runCtx)
	if err != nil {
		return nil, &ExportError{RunID: runID, Stage: StageLaunch, Message: "failed to acquire render target", Cause: err}
	}
	defer target.Close()

	if err := target.Load(runCtx, html); err != nil {
		return nil, &ExportError{RunID: runID, Stage: StageLoad, Message: "failed to load document", Cause: err}
	}

	result := &Result{
		RunID: runID,
		Title: rendering.ConfigTitle(docOpts),
		HTML:  html,
	}

	if !opts.SkipPrint {
		pdf, err := target.Print(runCtx)
		if err != nil {
			return nil, &ExportError{RunID: runID, Stage: StagePrint, Message: "failed to print document", Cause: err}
		}
		result.PDF = pdf
	}

	if opts.OutputPath != "" {
		data := result.PDF
		if opts.SkipPrint {
			data = []byte(html)
		}
		if err := writeOutput(opts.OutputPath, data); err != nil {
			return nil, &ExportError{RunID: runID, Stage: StageWrite, Message: "failed to write output", Cause: err}
		}
		result.OutputPath = opts.OutputPath
	}

	result.Duration = time.Since(start)
	if e.verbose {
		log.Printf("[EXPORT] Run %s finished in %s", runID, result.Duration.Round(time.Millisecond))
	}
	return result, nil
}

// FileName is the default output file name for a configuration, e.g.
// "resume-nanotech-academic.pdf" or "cv.pdf".
func FileName(opts types.Options, ext string) string {
	opts = opts.WithDefaults()
	if opts.IsCV() {
		return fmt.Sprintf("cv.%s", ext)
	}
	return fmt.Sprintf("resume-%s-%s.%s", opts.DomainFocus, opts.Audience, ext)
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
