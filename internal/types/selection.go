// Package types provides type definitions for structured data used throughout the portfolio system.
package types

// Scope is the effective filter a selection runs under after the
// CV short-circuit has been applied.
type Scope struct {
	// MatchAllDomains is set for CVs; Domains then holds the full universe.
	MatchAllDomains bool     `json:"match_all_domains"`
	Domains         []string `json:"domains"`
	Audience        Audience `json:"audience"`
}

// BodyStyle tells the template how to render an item body.
type BodyStyle string

const (
	BodyBullets BodyStyle = "bullets"
	BodyBlurb   BodyStyle = "blurb"
)

// SelectedItem is one entry after filtering, ordering and bullet truncation.
type SelectedItem struct {
	Title   string    `json:"title"`
	Meta    string    `json:"meta,omitempty"`
	Date    string    `json:"date,omitempty"`
	Style   BodyStyle `json:"style"`
	Bullets []string  `json:"bullets,omitempty"`
	Blurb   string    `json:"blurb,omitempty"`
	Tools   []string  `json:"tools,omitempty"`
}

// SelectedSection is a rendered section: a heading plus its items.
type SelectedSection struct {
	Kind    SectionKind    `json:"kind"`
	Heading string         `json:"heading"`
	Limit   int            `json:"limit"`
	Items   []SelectedItem `json:"items"`
}

// Selection is the output of the selection pipeline, consumed by the document templates.
// Only visible, non-empty sections are present.
type Selection struct {
	Options  Options           `json:"options"`
	Scope    Scope             `json:"scope"`
	Person   Person            `json:"person"`
	Skills   []SkillCategory   `json:"skills,omitempty"`
	Sections []SelectedSection `json:"sections"`
	Hidden   []SectionKind     `json:"hidden,omitempty"`
}

// Section returns the section of the given kind, or nil when it is not rendered.
func (s *Selection) Section(kind SectionKind) *SelectedSection {
	for i := range s.Sections {
		if s.Sections[i].Kind == kind {
			return &s.Sections[i]
		}
	}
	return nil
}

// ShowsSkills reports whether the skills section is rendered.
func (s *Selection) ShowsSkills() bool {
	return len(s.Skills) > 0
}
