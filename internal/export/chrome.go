// Package export - chrome.go prints documents through headless Chrome.
package export

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Letter paper in inches.
const (
	paperWidth  = 8.5
	paperHeight = 11.0
	marginInch  = 0.4
)

// ChromeLauncher launches one headless Chrome per export run.
// Requires Chrome/Chromium to be installed on the system.
type ChromeLauncher struct {
	Verbose bool
}

// Launch starts a browser and opens a blank tab. The returned target owns the
// browser process; Close releases it.
func (l ChromeLauncher) Launch(ctx context.Context) (Target, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	t := &chromeTarget{
		ctx:     browserCtx,
		verbose: l.Verbose,
		cancels: []context.CancelFunc{cancelBrowser, cancelAlloc},
	}

	if err := chromedp.Run(browserCtx, chromedp.Navigate("about:blank")); err != nil {
		t.Close()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	if l.Verbose {
		log.Printf("[EXPORT] Headless browser started")
	}
	return t, nil
}

type chromeTarget struct {
	ctx     context.Context
	verbose bool

	once    sync.Once
	cancels []context.CancelFunc
}

// Load replaces the tab's document with html.
func (t *chromeTarget) Load(ctx context.Context, html string) error {
	runCtx, cancel := t.scoped(ctx)
	defer cancel()

	return chromedp.Run(runCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
	)
}

// Print prints the loaded document to PDF.
func (t *chromeTarget) Print(ctx context.Context) ([]byte, error) {
	runCtx, cancel := t.scoped(ctx)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(marginInch).
				WithMarginBottom(marginInch).
				WithMarginLeft(marginInch).
				WithMarginRight(marginInch).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	if t.verbose {
		log.Printf("[EXPORT] Printed PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}

// Close cancels the tab and then the allocator, which kills the browser.
// It is safe to call more than once.
func (t *chromeTarget) Close() {
	t.once.Do(func() {
		for _, cancel := range t.cancels {
			cancel()
		}
		if t.verbose {
			log.Printf("[EXPORT] Headless browser closed")
		}
	})
}

// scoped derives a browser context that is also cancelled when ctx is done,
// so the run's deadline applies to each browser action.
func (t *chromeTarget) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithCancel(t.ctx)
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}
}
