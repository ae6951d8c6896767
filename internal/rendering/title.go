// Package rendering assembles selected portfolio content into a self-contained printable HTML document.
package rendering

import (
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// titleSeparator joins the parts of a configuration title.
const titleSeparator = " · "

// ConfigTitle builds the human-readable configuration title: the document type
// label, then for résumés the audience label and the domain label.
func ConfigTitle(opts types.Options) string {
	if opts.IsCV() {
		return "CV"
	}

	parts := []string{"Resume"}
	switch opts.Audience {
	case types.AudienceAcademic:
		parts = append(parts, "Academic")
	case types.AudienceIndustry:
		parts = append(parts, "Industry")
	}
	if opts.DomainFocus == types.FocusNanotech {
		parts = append(parts, "Nanotech")
	} else {
		parts = append(parts, "Data Science")
	}
	return strings.Join(parts, titleSeparator)
}
