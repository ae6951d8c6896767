// Package validation inspects rendered portfolio documents and reports constraint violations.
package validation

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Options provides optional parameters for document validation
type Options struct {
	ForbiddenPhrases []string // Case-insensitive phrases that must not appear in any item
	MaxBulletChars   int      // Bullets longer than this are reported as warnings (0 disables)
	PDFPath          string   // Exported PDF to page-count (optional)
	MaxPages         int      // Maximum page count for PDFPath (0 disables)
}

// invalidDateMarkers are strings a broken date formatter produces.
var invalidDateMarkers = []string{"Invalid Date", "NaN"}

// ValidateFile validates a rendered document file.
func ValidateFile(path string, opts *Options) (*types.Violations, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to read document: %s", path),
			Cause:   err,
		}
	}
	return ValidateDocument(string(content), opts)
}

// ValidateDocument checks a rendered document: every section has items,
// bullet counts stay within the declared caps, dates rendered cleanly and the
// styling is self-contained. Options add phrase, bullet length and page checks.
func ValidateDocument(html string, opts *Options) (*types.Violations, error) {
	report, err := InspectDocument(html)
	if err != nil {
		return nil, err
	}

	var allViolations []types.Violation

	// 1. Structural checks
	allViolations = append(allViolations, CheckEmptySections(report)...)
	allViolations = append(allViolations, CheckBulletCaps(report)...)
	allViolations = append(allViolations, CheckDates(report)...)
	allViolations = append(allViolations, CheckSelfContained(report)...)

	if opts == nil {
		return &types.Violations{Violations: allViolations}, nil
	}

	// 2. Content checks
	if len(opts.ForbiddenPhrases) > 0 {
		allViolations = append(allViolations, CheckForbiddenPhrases(report, opts.ForbiddenPhrases)...)
	}
	if opts.MaxBulletChars > 0 {
		allViolations = append(allViolations, CheckBulletLengths(report, opts.MaxBulletChars)...)
	}

	// 3. Page count of the exported PDF
	if opts.PDFPath != "" && opts.MaxPages > 0 {
		pageCount, err := CountPDFPages(opts.PDFPath)
		if err != nil {
			allViolations = append(allViolations, types.Violation{
				Type:     "page_overflow",
				Severity: "warning",
				Details:  fmt.Sprintf("Could not determine page count: %v", err),
			})
		} else if pageCount > opts.MaxPages {
			allViolations = append(allViolations, types.Violation{
				Type:     "page_overflow",
				Severity: "error",
				Details:  fmt.Sprintf("Document has %d pages, maximum allowed is %d", pageCount, opts.MaxPages),
				Count:    intPtr(pageCount),
				Limit:    intPtr(opts.MaxPages),
			})
		}
	}

	return &types.Violations{Violations: allViolations}, nil
}

// CheckEmptySections reports sections rendered with a heading but no items.
func CheckEmptySections(report *DocumentReport) []types.Violation {
	var violations []types.Violation
	for _, section := range report.Sections {
		if len(section.Items) == 0 {
			violations = append(violations, types.Violation{
				Type:     "empty_section",
				Severity: "error",
				Details:  fmt.Sprintf("Section %q has a heading but no items", section.Heading),
				Section:  section.Kind,
			})
		}
	}
	return violations
}

// CheckBulletCaps reports items with more bullets than their section declares.
func CheckBulletCaps(report *DocumentReport) []types.Violation {
	var violations []types.Violation
	for _, section := range report.Sections {
		if section.Limit <= 0 {
			continue
		}
		for _, item := range section.Items {
			if len(item.Bullets) > section.Limit {
				violations = append(violations, types.Violation{
					Type:     "bullet_overflow",
					Severity: "error",
					Details:  fmt.Sprintf("%q in %s has %d bullets, maximum is %d", item.Title, section.Kind, len(item.Bullets), section.Limit),
					Section:  section.Kind,
					Item:     item.Title,
					Count:    intPtr(len(item.Bullets)),
					Limit:    intPtr(section.Limit),
				})
			}
		}
	}
	return violations
}

// CheckDates reports dates rendered by a broken formatter.
func CheckDates(report *DocumentReport) []types.Violation {
	var violations []types.Violation
	for _, section := range report.Sections {
		for _, item := range section.Items {
			for _, marker := range invalidDateMarkers {
				if strings.Contains(item.Date, marker) {
					violations = append(violations, types.Violation{
						Type:     "invalid_date",
						Severity: "error",
						Details:  fmt.Sprintf("%q in %s shows date %q", item.Title, section.Kind, item.Date),
						Section:  section.Kind,
						Item:     item.Title,
					})
					break
				}
			}
		}
	}
	return violations
}

// CheckSelfContained reports documents that depend on external stylesheets or
// carry no styling of their own.
func CheckSelfContained(report *DocumentReport) []types.Violation {
	var violations []types.Violation
	if report.ExternalStylesheets > 0 {
		violations = append(violations, types.Violation{
			Type:     "external_style",
			Severity: "error",
			Details:  fmt.Sprintf("Document links %d external stylesheet(s)", report.ExternalStylesheets),
			Count:    intPtr(report.ExternalStylesheets),
		})
	}
	if report.InlineStyles == 0 {
		violations = append(violations, types.Violation{
			Type:     "external_style",
			Severity: "warning",
			Details:  "Document has no inline <style> block",
		})
	}
	return violations
}

// CheckBulletLengths reports bullets longer than maxChars characters.
func CheckBulletLengths(report *DocumentReport, maxChars int) []types.Violation {
	var violations []types.Violation
	for _, section := range report.Sections {
		for _, item := range section.Items {
			for i, bullet := range item.Bullets {
				length := len([]rune(bullet))
				if length > maxChars {
					violations = append(violations, types.Violation{
						Type:     "bullet_too_long",
						Severity: "warning",
						Details:  fmt.Sprintf("Bullet %d of %q has %d characters, maximum is %d", i+1, item.Title, length, maxChars),
						Section:  section.Kind,
						Item:     item.Title,
						Count:    intPtr(length),
						Limit:    intPtr(maxChars),
					})
				}
			}
		}
	}
	return violations
}

// intPtr returns a pointer to an integer
func intPtr(i int) *int {
	return &i
}
