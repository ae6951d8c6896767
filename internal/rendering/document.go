// Package rendering assembles selected portfolio content into a self-contained printable HTML document.
package rendering

import (
	"strings"
	"text/template"

	"github.com/jonathan/portfolio-cv/internal/selection"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// toolSeparator joins tool labels under an item.
const toolSeparator = " · "

// TemplateData represents the data structure passed to the document templates.
// Every string field is already HTML-escaped.
type TemplateData struct {
	Title      string
	Layout     Layout
	Lang       string
	Name       string
	Headline   string
	Summary    string
	Contacts   []ContactLink
	Skills     []SkillView
	Education  *SectionView
	Coursework *SectionView
	// Main holds research, technical experience, projects and work experience in order.
	Main []SectionView
}

// SkillView is one skill category with its items joined for display.
type SkillView struct {
	Title string
	Items string
}

// SectionView is a rendered section heading and its items.
type SectionView struct {
	Kind    types.SectionKind
	Heading string
	Limit   int
	Items   []ItemView
}

// ItemView is a rendered entry.
type ItemView struct {
	Title   string
	Meta    string
	Date    string
	IsBlurb bool
	Blurb   string
	Bullets []string
	Tools   string
}

// BuildDocument validates the options, selects content from the repository and
// renders it with the embedded layout for the document type.
func BuildDocument(repo *types.Repository, opts types.Options) (string, error) {
	return BuildDocumentWithTemplate(repo, opts, "")
}

// BuildDocumentWithTemplate is BuildDocument with an optional custom template file.
func BuildDocumentWithTemplate(repo *types.Repository, opts types.Options, templatePath string) (string, error) {
	if repo == nil {
		return "", &RenderError{Message: "repository is nil"}
	}

	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return "", &RenderError{
			Message: "invalid document options",
			Cause:   err,
		}
	}

	sel, err := selection.Select(repo, opts)
	if err != nil {
		return "", &RenderError{
			Message: "failed to select content",
			Cause:   err,
		}
	}

	return RenderDocument(sel, templatePath)
}

// RenderDocument renders a selection. An empty templatePath uses the embedded
// layout for the selection's document type.
func RenderDocument(sel *types.Selection, templatePath string) (string, error) {
	if sel == nil {
		return "", &RenderError{Message: "selection is nil"}
	}

	var (
		tmpl *template.Template
		err  error
	)
	if templatePath == "" {
		tmpl, err = embeddedTemplate(LayoutFor(sel.Options.DocumentType))
	} else {
		tmpl, err = parseTemplate(templatePath)
	}
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(sel)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// buildTemplateData escapes and formats a selection for the templates
func buildTemplateData(sel *types.Selection) *TemplateData {
	opts := sel.Options
	data := &TemplateData{
		Title:    EscapeHTML(ConfigTitle(opts)),
		Layout:   LayoutFor(opts.DocumentType),
		Lang:     EscapeHTML(opts.Locale),
		Name:     EscapeHTML(sel.Person.Name),
		Headline: EscapeHTML(sel.Person.Headline),
		Summary:  EscapeHTML(sel.Person.Summary),
	}

	for _, link := range FormatContact(sel.Person.Contact) {
		data.Contacts = append(data.Contacts, ContactLink{
			Label:   EscapeHTML(link.Label),
			Display: EscapeHTML(link.Display),
			Href:    EscapeHTML(link.Href),
		})
	}

	for _, skill := range sel.Skills {
		data.Skills = append(data.Skills, SkillView{
			Title: EscapeHTML(skill.Title),
			Items: EscapeHTML(strings.Join(skill.Items, ", ")),
		})
	}

	for _, section := range sel.Sections {
		view := buildSectionView(section, opts.Locale)
		switch section.Kind {
		case types.SectionEducation:
			data.Education = &view
		case types.SectionCoursework:
			data.Coursework = &view
		default:
			data.Main = append(data.Main, view)
		}
	}

	return data
}

func buildSectionView(section types.SelectedSection, locale string) SectionView {
	view := SectionView{
		Kind:    section.Kind,
		Heading: EscapeHTML(section.Heading),
		Limit:   section.Limit,
		Items:   make([]ItemView, 0, len(section.Items)),
	}

	for _, item := range section.Items {
		view.Items = append(view.Items, ItemView{
			Title:   EscapeHTML(item.Title),
			Meta:    EscapeHTML(item.Meta),
			Date:    EscapeHTML(FormatMonthYear(item.Date, locale)),
			IsBlurb: item.Style == types.BodyBlurb,
			Blurb:   EscapeHTML(item.Blurb),
			Bullets: escapeAll(item.Bullets),
			Tools:   EscapeHTML(strings.Join(item.Tools, toolSeparator)),
		})
	}

	return view
}
