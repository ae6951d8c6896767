package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/portfolio-cv/internal/catalog"
	"github.com/jonathan/portfolio-cv/internal/export"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintSelection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	sel := &types.Selection{
		Options: types.Options{DocumentType: types.DocumentResume},
		Scope:   types.Scope{Domains: []string{"nanofab"}, Audience: types.AudienceAcademic},
		Skills:  []types.SkillCategory{{Title: "Fabrication"}, {Title: "Communication"}},
		Sections: []types.SelectedSection{
			{
				Heading: "Research", Limit: 3,
				Items: []types.SelectedItem{{Title: "TRNG", Style: types.BodyBullets, Bullets: []string{"a", "b"}}},
			},
			{
				Heading: "Projects", Limit: 2,
				Items: []types.SelectedItem{{Title: "Chip Layout", Style: types.BodyBlurb, Blurb: "short"}},
			},
		},
		Hidden: []types.SectionKind{types.SectionExperience},
	}

	p.PrintSelection(sel)
	output := buf.String()

	assert.Contains(t, output, "DOCUMENT SELECTION")
	assert.Contains(t, output, "Domains:  nanofab")
	assert.Contains(t, output, "Audience: academic")
	assert.Contains(t, output, "Skills: Fabrication, Communication")
	assert.Contains(t, output, "Research (1, cap 3)")
	assert.Contains(t, output, "• TRNG [2]")
	assert.Contains(t, output, "• Chip Layout [blurb]")
	assert.Contains(t, output, "Hidden: experience")
}

func TestPrintSelection_CVAndManyItems(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := make([]types.SelectedItem, 8)
	for i := range items {
		items[i] = types.SelectedItem{Title: "Item"}
	}
	sel := &types.Selection{
		Options:  types.Options{DocumentType: types.DocumentCV},
		Scope:    types.Scope{MatchAllDomains: true, Audience: types.AudienceAll},
		Sections: []types.SelectedSection{{Heading: "Education", Limit: 999, Items: items}},
	}

	p.PrintSelection(sel)
	output := buf.String()

	assert.Contains(t, output, "Domains:  all")
	assert.Contains(t, output, "Education (8, no cap)")
	assert.Contains(t, output, "... and 3 more")
}

func TestPrintSelection_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSelection(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	state := catalog.State{Category: catalog.CategoryNanofab, Query: "entropy", Sort: catalog.SortRelevance}
	cards := []catalog.Summary{{Title: "True Random Number Generator", Kind: types.KindResearch, Score: 37}}

	p.PrintCatalog(state, cards)
	output := buf.String()

	assert.Contains(t, output, "Category: Nanofabrication")
	assert.Contains(t, output, `Query:    "entropy"`)
	assert.Contains(t, output, "Matches:  1")
	assert.Contains(t, output, "#1  True Random Number Generator (research)  score 37")
}

func TestPrintExport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExport(&export.Result{
		RunID:      "run-1",
		Title:      "CV",
		HTML:       "<html></html>",
		PDF:        []byte("%PDF"),
		OutputPath: "out/cv.pdf",
		Duration:   1500 * time.Millisecond,
	})
	output := buf.String()

	assert.Contains(t, output, "Run:      run-1")
	assert.Contains(t, output, "PDF:      4 bytes")
	assert.Contains(t, output, "Output:   out/cv.pdf")
	assert.Contains(t, output, "Duration: 1.5s")
}

func TestPrintViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	violations := &types.Violations{
		Violations: []types.Violation{
			{Type: "bullet_overflow", Severity: "error", Section: "project", Details: "Fish Tracker has 4 bullets, section cap is 2"},
			{Type: "bullet_too_long", Severity: "warning", Details: strings.Repeat("x", 80)},
		},
	}

	p.PrintViolations(violations)
	output := buf.String()

	assert.Contains(t, output, "DOCUMENT VIOLATIONS")
	assert.Contains(t, output, "Found 2 violations")
	assert.Contains(t, output, "✗ bullet_overflow")
	assert.Contains(t, output, "⚠ bullet_too_long")
	assert.Contains(t, output, "section: project")
	assert.Contains(t, output, "...")
}

func TestPrintViolations_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(nil)
	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")

	buf.Reset()
	p.PrintViolations(&types.Violations{})
	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")
}

func TestPrintBox_TruncatesRuneSafe(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.Contains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		assert.True(t, strings.HasSuffix(line, "│") || strings.HasSuffix(line, "┐") || strings.HasSuffix(line, "┤") || strings.HasSuffix(line, "┘"))
	}
}
