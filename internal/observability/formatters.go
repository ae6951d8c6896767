// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/portfolio-cv/internal/catalog"
	"github.com/jonathan/portfolio-cv/internal/export"
	"github.com/jonathan/portfolio-cv/internal/selection"
	"github.com/jonathan/portfolio-cv/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSelection outputs the effective scope and the sections a document will render.
func (p *Printer) PrintSelection(sel *types.Selection) {
	if sel == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Document: %s\n", sel.Options.DocumentType))
	if sel.Scope.MatchAllDomains {
		sb.WriteString("Domains:  all\n")
	} else {
		sb.WriteString(fmt.Sprintf("Domains:  %s\n", strings.Join(sel.Scope.Domains, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Audience: %s\n", sel.Scope.Audience))
	sb.WriteString("\n")

	if len(sel.Skills) > 0 {
		titles := make([]string, 0, len(sel.Skills))
		for _, s := range sel.Skills {
			titles = append(titles, s.Title)
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n\n", strings.Join(titles, ", ")))
	}

	for i, section := range sel.Sections {
		limit := fmt.Sprintf("cap %d", section.Limit)
		if section.Limit >= selection.Unlimited {
			limit = "no cap"
		}
		sb.WriteString(fmt.Sprintf("%s (%d, %s)\n", section.Heading, len(section.Items), limit))

		count := min(len(section.Items), maxItemsToShow)
		for j := 0; j < count; j++ {
			item := section.Items[j]
			line := fmt.Sprintf("  • %s", item.Title)
			if item.Style == types.BodyBlurb {
				line += " [blurb]"
			} else if len(item.Bullets) > 0 {
				line += fmt.Sprintf(" [%d]", len(item.Bullets))
			}
			sb.WriteString(line + "\n")
		}
		if len(section.Items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.Items)-maxItemsToShow))
		}
		if i < len(sel.Sections)-1 {
			sb.WriteString("\n")
		}
	}

	if len(sel.Hidden) > 0 {
		hidden := make([]string, 0, len(sel.Hidden))
		for _, h := range sel.Hidden {
			hidden = append(hidden, string(h))
		}
		sb.WriteString(fmt.Sprintf("\nHidden: %s\n", strings.Join(hidden, ", ")))
	}

	p.printBox("DOCUMENT SELECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCatalog outputs the visible catalog cards for a view state.
func (p *Printer) PrintCatalog(state catalog.State, cards []catalog.Summary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Category: %s\n", state.Category.Label()))
	if state.Query != "" {
		sb.WriteString(fmt.Sprintf("Query:    %q\n", state.Query))
	}
	sb.WriteString(fmt.Sprintf("Sort:     %s\n", state.Sort))
	sb.WriteString(fmt.Sprintf("Matches:  %d\n", len(cards)))

	if len(cards) > 0 {
		sb.WriteString("\n")
	}
	count := min(len(cards), maxItemsToShow)
	for i := 0; i < count; i++ {
		card := cards[i]
		line := fmt.Sprintf("#%d  %s (%s)", i+1, card.Title, card.Kind)
		if state.Query != "" {
			line += fmt.Sprintf("  score %d", card.Score)
		}
		sb.WriteString(line + "\n")
	}
	if len(cards) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more cards\n", len(cards)-maxItemsToShow))
	}

	p.printBox("CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExport outputs a summary of a finished export run.
func (p *Printer) PrintExport(result *export.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", result.Title))
	if len(result.PDF) > 0 {
		sb.WriteString(fmt.Sprintf("PDF:      %d bytes\n", len(result.PDF)))
	}
	sb.WriteString(fmt.Sprintf("HTML:     %d bytes\n", len(result.HTML)))
	if result.OutputPath != "" {
		sb.WriteString(fmt.Sprintf("Output:   %s\n", result.OutputPath))
	}
	sb.WriteString(fmt.Sprintf("Duration: %s", result.Duration.Round(time.Millisecond)))

	p.printBox("EXPORT", sb.String())
}

// PrintViolations outputs any document check failures found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		marker := "⚠"
		if v.Severity == "error" {
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, v.Type))
		if v.Section != "" {
			sb.WriteString(fmt.Sprintf("  section: %s\n", v.Section))
		}
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(v.Details, 45)))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DOCUMENT VIOLATIONS", sb.String())
}
