package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/portfolio-cv/internal/content"
	"github.com/jonathan/portfolio-cv/internal/rendering"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brokenDocument = `<!DOCTYPE html>
<html>
<head>
<title>Resume</title>
<link rel="stylesheet" href="https://example.com/site.css">
</head>
<body data-layout="resume">
<section class="section" data-section="research" data-limit="3">
  <h2>Research</h2>
</section>
<section class="section" data-section="project" data-limit="2">
  <h2>Projects</h2>
  <article class="item">
    <div class="item-head"><h3>Fish Tracker</h3><span class="date">Invalid Date</span></div>
    <ul class="bullets"><li>one</li><li>two</li><li>three</li></ul>
  </article>
  <article class="item">
    <div class="item-head"><h3>Dashboard</h3><span class="date">Mar 2024</span></div>
    <ul class="bullets"><li>Lorem ipsum dolor sit amet</li></ul>
  </article>
</section>
</body>
</html>`

func violationTypes(v *types.Violations) []string {
	out := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		out = append(out, violation.Type)
	}
	return out
}

func TestValidateDocument_BrokenDocument(t *testing.T) {
	violations, err := ValidateDocument(brokenDocument, nil)
	require.NoError(t, err)

	typesFound := violationTypes(violations)
	assert.Contains(t, typesFound, "empty_section")
	assert.Contains(t, typesFound, "bullet_overflow")
	assert.Contains(t, typesFound, "invalid_date")
	assert.Contains(t, typesFound, "external_style")
	assert.True(t, violations.HasErrors())

	for _, v := range violations.Violations {
		if v.Type == "bullet_overflow" {
			assert.Equal(t, "project", v.Section)
			assert.Equal(t, "Fish Tracker", v.Item)
			require.NotNil(t, v.Count)
			require.NotNil(t, v.Limit)
			assert.Equal(t, 3, *v.Count)
			assert.Equal(t, 2, *v.Limit)
		}
	}
}

func TestValidateDocument_ForbiddenPhrasesAndLongBullets(t *testing.T) {
	violations, err := ValidateDocument(brokenDocument, &Options{
		ForbiddenPhrases: DefaultForbiddenPhrases,
		MaxBulletChars:   10,
	})
	require.NoError(t, err)

	var phrase, long []types.Violation
	for _, v := range violations.Violations {
		switch v.Type {
		case "forbidden_phrase":
			phrase = append(phrase, v)
		case "bullet_too_long":
			long = append(long, v)
		}
	}

	require.Len(t, phrase, 1)
	assert.Equal(t, "Dashboard", phrase[0].Item)
	require.Len(t, long, 1)
	assert.Equal(t, "warning", long[0].Severity)
}

func TestValidateDocument_RenderedDocumentsAreClean(t *testing.T) {
	repo, err := content.Default()
	require.NoError(t, err)

	configs := []types.Options{
		types.DefaultOptions(),
		{DocumentType: types.DocumentCV},
		{DocumentType: types.DocumentResume, DomainFocus: types.FocusNanotech, Audience: types.AudienceAcademic},
		{DocumentType: types.DocumentResume, DomainFocus: types.FocusDataScience, Audience: types.AudienceAcademic},
		{DocumentType: types.DocumentResume, DomainFocus: types.FocusNanotech, Audience: types.AudienceIndustry},
	}

	for _, opts := range configs {
		html, err := rendering.BuildDocument(repo, opts)
		require.NoError(t, err)

		violations, err := ValidateDocument(html, &Options{ForbiddenPhrases: DefaultForbiddenPhrases})
		require.NoError(t, err)
		assert.Empty(t, violations.Violations, "%+v", opts)
	}
}

func TestValidateDocument_PageCount(t *testing.T) {
	tmpDir := t.TempDir()
	pdfPath := filepath.Join(tmpDir, "doc.pdf")
	pdf := "%PDF-1.4\n1 0 obj << /Type /Pages /Count 3 >> endobj\n" +
		"2 0 obj << /Type /Page /Parent 1 0 R >> endobj\n" +
		"3 0 obj << /Type /Page /Parent 1 0 R >> endobj\n" +
		"4 0 obj << /Type /Page /Parent 1 0 R >> endobj\n%%EOF\n"
	require.NoError(t, os.WriteFile(pdfPath, []byte(pdf), 0644))

	html, err := rendering.BuildDocument(&types.Repository{
		Person:    types.Person{Name: "Test"},
		Education: []types.Entry{{Title: "University"}},
	}, types.Options{DocumentType: types.DocumentCV})
	require.NoError(t, err)

	violations, err := ValidateDocument(html, &Options{PDFPath: pdfPath, MaxPages: 2})
	require.NoError(t, err)
	require.Len(t, violations.Violations, 1)
	assert.Equal(t, "page_overflow", violations.Violations[0].Type)
}

func TestValidateFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.html")
	require.NoError(t, os.WriteFile(path, []byte(brokenDocument), 0644))

	violations, err := ValidateFile(path, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, violations.Violations)

	_, err = ValidateFile(filepath.Join(tmpDir, "missing.html"), nil)
	require.Error(t, err)
	var readErr *FileReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestInspectDocument(t *testing.T) {
	report, err := InspectDocument(brokenDocument)
	require.NoError(t, err)

	assert.Equal(t, "Resume", report.Title)
	assert.Equal(t, "resume", report.Layout)
	assert.Equal(t, 1, report.ExternalStylesheets)
	assert.Equal(t, 0, report.InlineStyles)
	assert.Equal(t, []string{"research", "project"}, report.SectionKinds())

	projects := report.Section("project")
	require.NotNil(t, projects)
	assert.Equal(t, "Projects", projects.Heading)
	assert.Equal(t, 2, projects.Limit)
	require.Len(t, projects.Items, 2)
	assert.Equal(t, []string{"one", "two", "three"}, projects.Items[0].Bullets)
	assert.Equal(t, "Mar 2024", projects.Items[1].Date)

	assert.Nil(t, report.Section("lab"))
}

func TestCheckForbiddenPhrases_WordBoundaries(t *testing.T) {
	report := &DocumentReport{Sections: []SectionReport{{
		Kind: "project",
		Items: []ItemReport{
			{Title: "A", Text: "Statistical undefined behaviour"},
			{Title: "B", Text: "Outstanding results"},
		},
	}}}

	violations := CheckForbiddenPhrases(report, []string{"undefined", "tbd", "  "})
	require.Len(t, violations, 1)
	assert.Equal(t, "A", violations[0].Item)

	assert.Empty(t, CheckForbiddenPhrases(report, nil))
}
