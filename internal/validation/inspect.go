// Package validation inspects rendered portfolio documents and reports constraint violations.
package validation

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DocumentReport is the structure recovered from a rendered document.
type DocumentReport struct {
	Title               string
	Layout              string
	InlineStyles        int
	ExternalStylesheets int
	Sections            []SectionReport
}

// SectionReport describes one rendered section.
type SectionReport struct {
	Kind    string
	Heading string
	// Limit is the bullet cap declared by the section, or 0 when none is declared.
	Limit int
	Items []ItemReport
}

// ItemReport describes one rendered entry.
type ItemReport struct {
	Title   string
	Date    string
	Bullets []string
	Text    string
}

// InspectDocument parses a rendered document into a report.
func InspectDocument(html string) (*DocumentReport, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	report := &DocumentReport{
		Title:               strings.TrimSpace(doc.Find("title").First().Text()),
		Layout:              doc.Find("body").AttrOr("data-layout", ""),
		InlineStyles:        doc.Find("style").Length(),
		ExternalStylesheets: doc.Find(`link[rel="stylesheet"]`).Length(),
	}

	doc.Find("section[data-section]").Each(func(_ int, s *goquery.Selection) {
		section := SectionReport{
			Kind:    s.AttrOr("data-section", ""),
			Heading: cleanWhitespace(s.Find("h2").First().Text()),
		}
		if limit, err := strconv.Atoi(s.AttrOr("data-limit", "")); err == nil {
			section.Limit = limit
		}

		s.Find(".item").Each(func(_ int, item *goquery.Selection) {
			var bullets []string
			item.Find("ul.bullets li").Each(func(_ int, li *goquery.Selection) {
				bullets = append(bullets, cleanWhitespace(li.Text()))
			})
			section.Items = append(section.Items, ItemReport{
				Title:   cleanWhitespace(item.Find("h3").First().Text()),
				Date:    cleanWhitespace(item.Find(".date").First().Text()),
				Bullets: bullets,
				Text:    cleanWhitespace(item.Text()),
			})
		})

		report.Sections = append(report.Sections, section)
	})

	return report, nil
}

// Section returns the report of the section of the given kind, or nil.
func (r *DocumentReport) Section(kind string) *SectionReport {
	for i := range r.Sections {
		if r.Sections[i].Kind == kind {
			return &r.Sections[i]
		}
	}
	return nil
}

// SectionKinds returns the rendered section kinds in document order.
func (r *DocumentReport) SectionKinds() []string {
	kinds := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func cleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
