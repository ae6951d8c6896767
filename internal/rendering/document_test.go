package rendering

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/portfolio-cv/internal/content"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func defaultRepository(t *testing.T) *types.Repository {
	t.Helper()
	repo, err := content.Default()
	require.NoError(t, err)
	return repo
}

func sectionKinds(doc *goquery.Document) []string {
	var kinds []string
	doc.Find("section[data-section]").Each(func(_ int, s *goquery.Selection) {
		kinds = append(kinds, s.AttrOr("data-section", ""))
	})
	return kinds
}

func TestBuildDocument_NilRepository(t *testing.T) {
	_, err := BuildDocument(nil, types.DefaultOptions())
	require.Error(t, err)

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestBuildDocument_InvalidOptions(t *testing.T) {
	_, err := BuildDocument(defaultRepository(t), types.Options{DocumentType: types.DocumentResume, DomainFocus: "biology"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid document options")
}

func TestBuildDocument_NanotechAcademicResume(t *testing.T) {
	opts := types.Options{DocumentType: types.DocumentResume, DomainFocus: types.FocusNanotech, Audience: types.AudienceAcademic}

	html, err := BuildDocument(defaultRepository(t), opts)
	require.NoError(t, err)
	doc := parseHTML(t, html)

	assert.Equal(t, "Resume · Academic · Nanotech", doc.Find("title").Text())
	assert.Equal(t, "resume", doc.Find("body").AttrOr("data-layout", ""))

	kinds := sectionKinds(doc)
	assert.Contains(t, kinds, "lab")
	assert.Contains(t, kinds, "coursework")
	assert.NotContains(t, kinds, "experience")

	assert.Equal(t, 1, doc.Find("aside.rail section[data-section=coursework]").Length())
	assert.Equal(t, 1, doc.Find("main.main section[data-section=lab]").Length())
	assert.Equal(t, "Technical Experience", doc.Find("section[data-section=lab] h2").Text())
}

func TestBuildDocument_DataScienceIndustryResume(t *testing.T) {
	opts := types.Options{DocumentType: types.DocumentResume, DomainFocus: types.FocusDataScience, Audience: types.AudienceIndustry}

	html, err := BuildDocument(defaultRepository(t), opts)
	require.NoError(t, err)
	doc := parseHTML(t, html)

	kinds := sectionKinds(doc)
	assert.NotContains(t, kinds, "research")
	assert.NotContains(t, kinds, "coursework")
	assert.Contains(t, kinds, "experience")
	assert.Contains(t, kinds, "project")

	projects := doc.Find("section[data-section=project] article.item")
	require.Greater(t, projects.Length(), 0)
	projects.Each(func(_ int, item *goquery.Selection) {
		assert.Equal(t, 1, item.Find("p.blurb").Length(), "resume projects use the blurb body")
		assert.Equal(t, 0, item.Find("ul.bullets").Length())
	})
}

func TestBuildDocument_CV(t *testing.T) {
	html, err := BuildDocument(defaultRepository(t), types.Options{DocumentType: types.DocumentCV, DomainFocus: types.FocusNanotech, Audience: types.AudienceIndustry})
	require.NoError(t, err)
	doc := parseHTML(t, html)

	assert.Equal(t, "CV", doc.Find("title").Text())
	assert.Equal(t, "cv", doc.Find("body").AttrOr("data-layout", ""))
	assert.Equal(t, 0, doc.Find(".columns").Length(), "cv is single column")

	kinds := sectionKinds(doc)
	for _, kind := range []string{"education", "skills", "research", "lab", "project", "experience"} {
		assert.Contains(t, kinds, kind)
	}
	assert.NotContains(t, kinds, "coursework")

	assert.Equal(t, "999", doc.Find("section[data-section=research]").AttrOr("data-limit", ""))
}

func TestBuildDocument_Idempotent(t *testing.T) {
	repo := defaultRepository(t)
	for _, opts := range []types.Options{
		types.DefaultOptions(),
		{DocumentType: types.DocumentCV},
		{DocumentType: types.DocumentResume, DomainFocus: types.FocusNanotech, Audience: types.AudienceAcademic},
	} {
		first, err := BuildDocument(repo, opts)
		require.NoError(t, err)
		second, err := BuildDocument(repo, opts)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestBuildDocument_BulletCapsRespected(t *testing.T) {
	repo := defaultRepository(t)
	for _, opts := range []types.Options{
		types.DefaultOptions(),
		{DocumentType: types.DocumentCV},
		{DocumentType: types.DocumentResume, DomainFocus: types.FocusNanotech, Audience: types.AudienceAcademic},
		{DocumentType: types.DocumentResume, DomainFocus: types.FocusDataScience, Audience: types.AudienceAcademic},
	} {
		html, err := BuildDocument(repo, opts)
		require.NoError(t, err)

		parseHTML(t, html).Find("section[data-limit]").Each(func(_ int, s *goquery.Selection) {
			limit, err := strconv.Atoi(s.AttrOr("data-limit", ""))
			require.NoError(t, err)
			s.Find("article.item").Each(func(_ int, item *goquery.Selection) {
				assert.LessOrEqual(t, item.Find("ul.bullets li").Length(), limit)
			})
		})
	}
}

func TestBuildDocument_SelfContained(t *testing.T) {
	html, err := BuildDocument(defaultRepository(t), types.DefaultOptions())
	require.NoError(t, err)
	doc := parseHTML(t, html)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Equal(t, 1, doc.Find("head style").Length())
	assert.Equal(t, 0, doc.Find("link[rel=stylesheet]").Length())
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.NotContains(t, html, "Invalid Date")
}

func TestBuildDocument_EscapingRoundTrip(t *testing.T) {
	title := `<Fish & "Chips" 'R' Us>`
	repo := &types.Repository{
		Person: types.Person{Name: "A & B <Consulting>"},
		Cards: []types.Card{{
			Kind:  types.KindProject,
			Entry: types.Entry{Title: title, Date: "2025-01", Bullets: []string{`x < y && y > "z"`}},
		}},
	}

	html, err := BuildDocument(repo, types.Options{DocumentType: types.DocumentCV})
	require.NoError(t, err)

	assert.NotContains(t, html, title)
	assert.NotContains(t, html, "<Consulting>")
	assert.Contains(t, html, EscapeHTML(title))
	assert.Contains(t, html, "&lt;Fish &amp; &quot;Chips&quot; &#039;R&#039; Us&gt;")

	doc := parseHTML(t, html)
	assert.Equal(t, title, doc.Find("section[data-section=project] h3").Text())
	assert.Equal(t, "A & B <Consulting>", doc.Find("header h1").Text())
	assert.Equal(t, `x < y && y > "z"`, doc.Find("section[data-section=project] li").Text())
	assert.Equal(t, "Jan 2025", doc.Find("section[data-section=project] .date").Text())
}

func TestBuildDocument_EmptySectionsOmitted(t *testing.T) {
	repo := &types.Repository{
		Person:    types.Person{Name: "Test"},
		Education: []types.Entry{{Title: "University"}},
	}

	html, err := BuildDocument(repo, types.Options{DocumentType: types.DocumentCV})
	require.NoError(t, err)
	doc := parseHTML(t, html)

	assert.Equal(t, []string{"education"}, sectionKinds(doc))
	assert.NotContains(t, html, "<h2>Research</h2>")
	assert.NotContains(t, html, "<h2>Skills</h2>")
	doc.Find("section").Each(func(_ int, s *goquery.Selection) {
		assert.Greater(t, s.Find(".item").Length(), 0)
	})
}

func TestBuildDocument_ContactLinks(t *testing.T) {
	repo := &types.Repository{Person: types.Person{
		Name:    "Test",
		Contact: types.Contact{Email: "me@example.com", LinkedIn: "https://www.linkedin.com/in/me/"},
	}}

	html, err := BuildDocument(repo, types.Options{DocumentType: types.DocumentCV})
	require.NoError(t, err)
	doc := parseHTML(t, html)

	links := doc.Find("ul.contact a")
	require.Equal(t, 2, links.Length())
	assert.Equal(t, "mailto:me@example.com", links.Eq(0).AttrOr("href", ""))
	assert.Equal(t, "linkedin.com/in/me", links.Eq(1).Text())
	assert.Equal(t, "https://www.linkedin.com/in/me/", links.Eq(1).AttrOr("href", ""))
}

func TestBuildDocumentWithTemplate_Custom(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "custom.tmpl")
	templateContent := `<html><head><title>{{.Title}}</title></head><body>{{template "header" .}}{{range .Main}}<p class="kind">{{.Kind}}</p>{{end}}</body></html>`
	require.NoError(t, os.WriteFile(templatePath, []byte(templateContent), 0644))

	html, err := BuildDocumentWithTemplate(defaultRepository(t), types.Options{DocumentType: types.DocumentCV}, templatePath)
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.Equal(t, "CV", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("header.doc-header").Length())
	assert.Greater(t, doc.Find("p.kind").Length(), 0)
}

func TestBuildDocumentWithTemplate_FieldsEscapedOnce(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "name.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte(`<h1>{{.Name}}</h1>`), 0644))

	repo := &types.Repository{Person: types.Person{Name: "Ada & Bo <Labs>"}}
	html, err := BuildDocumentWithTemplate(repo, types.Options{DocumentType: types.DocumentCV}, templatePath)
	require.NoError(t, err)

	assert.Equal(t, "<h1>Ada &amp; Bo &lt;Labs&gt;</h1>", html)
	assert.NotContains(t, html, "&amp;amp;")
}

func TestParseTemplate_UnknownFunction(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "escape.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte(`<h1>{{escape .Name}}</h1>`), 0644))

	_, err := parseTemplate(templatePath)
	require.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestParseTemplate_InvalidPath(t *testing.T) {
	_, err := parseTemplate("/nonexistent/template.tmpl")
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestParseTemplate_InvalidTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "invalid.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte(`<html>{{.InvalidSyntax{{}}</html>`), 0644))

	_, err := parseTemplate(templatePath)
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestRenderDocument_NilSelection(t *testing.T) {
	_, err := RenderDocument(nil, "")
	require.Error(t, err)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestEmbeddedTemplate_Cached(t *testing.T) {
	ClearCache()
	first, err := embeddedTemplate(LayoutResume)
	require.NoError(t, err)
	second, err := embeddedTemplate(LayoutResume)
	require.NoError(t, err)
	assert.Same(t, first, second)

	cv, err := embeddedTemplate(LayoutCV)
	require.NoError(t, err)
	assert.NotSame(t, first, cv)
}
