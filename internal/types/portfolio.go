// Package types provides type definitions for structured data used throughout the portfolio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Repository is the static content store every document and catalog view is built from.
// It is loaded once and treated as read-only afterwards.
type Repository struct {
	Person     Person          `json:"person" yaml:"person"`
	Highlights []string        `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	Skills     []SkillCategory `json:"skills,omitempty" yaml:"skills,omitempty"`
	Education  []Entry         `json:"education,omitempty" yaml:"education,omitempty"`
	Coursework []Entry         `json:"coursework,omitempty" yaml:"coursework,omitempty"`
	Experience []Entry         `json:"experience,omitempty" yaml:"experience,omitempty"`
	Cards      []Card          `json:"cards,omitempty" yaml:"cards,omitempty"`
}

// Person is the profile record shown in document headers.
type Person struct {
	Name       string   `json:"name" yaml:"name"`
	Headline   string   `json:"headline,omitempty" yaml:"headline,omitempty"`
	Photo      string   `json:"photo,omitempty" yaml:"photo,omitempty"`
	PhotoAlt   string   `json:"photo_alt,omitempty" yaml:"photo_alt,omitempty"`
	Contact    Contact  `json:"contact" yaml:"contact"`
	Summary    string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	FocusAreas []string `json:"focus_areas,omitempty" yaml:"focus_areas,omitempty"`
}

// Contact holds the optional contact fields, rendered in this order.
type Contact struct {
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty" yaml:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty" yaml:"portfolio,omitempty"`
}

// SkillCategory groups skill items under a title.
type SkillCategory struct {
	Title   string   `json:"title" yaml:"title"`
	Domains []string `json:"domains,omitempty" yaml:"domains,omitempty"`
	Items   []string `json:"items,omitempty" yaml:"items,omitempty"`
}

// Entry is the base shape shared by education, coursework, experience and cards.
type Entry struct {
	Title      string   `json:"title" yaml:"title"`
	Date       string   `json:"date,omitempty" yaml:"date,omitempty"`
	Domains    []string `json:"domains,omitempty" yaml:"domains,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Track      Track    `json:"track,omitempty" yaml:"track,omitempty"`
	Meta       string   `json:"meta,omitempty" yaml:"meta,omitempty"`
	Bullets    []string `json:"bullets,omitempty" yaml:"bullets,omitempty"`
	CVBullets  []string `json:"cv_bullets,omitempty" yaml:"cv_bullets,omitempty"`
	Blurb      string   `json:"blurb,omitempty" yaml:"blurb,omitempty"`
	Tools      []string `json:"tools,omitempty" yaml:"tools,omitempty"`
}

// DomainTags returns the union of Domains and Categories in declaration order.
// The two fields are interchangeable; an empty result means the entry is global.
func (e *Entry) DomainTags() []string {
	if len(e.Categories) == 0 {
		return e.Domains
	}
	if len(e.Domains) == 0 {
		return e.Categories
	}
	tags := make([]string, 0, len(e.Domains)+len(e.Categories))
	tags = append(tags, e.Domains...)
	return append(tags, e.Categories...)
}

// HasDomainTag reports whether tag appears in either tag field.
func (e *Entry) HasDomainTag(tag string) bool {
	for _, t := range e.DomainTags() {
		if t == tag {
			return true
		}
	}
	return false
}

// CardKind classifies a card for the catalog and for document sections.
type CardKind string

const (
	KindResearch CardKind = "research"
	KindLab      CardKind = "lab"
	KindProject  CardKind = "project"
)

// Card is the unified catalog entry (research, lab or project).
type Card struct {
	Entry    `yaml:",inline"`
	Kind     CardKind `json:"kind" yaml:"kind"`
	Featured bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
	Modules  []Module `json:"modules,omitempty" yaml:"modules,omitempty"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Details  string   `json:"details,omitempty" yaml:"details,omitempty"`
	Image    string   `json:"image,omitempty" yaml:"image,omitempty"`
	Images   []string `json:"images,omitempty" yaml:"images,omitempty"`
	ImageAlt string   `json:"image_alt,omitempty" yaml:"image_alt,omitempty"`
	Links    []Link   `json:"links,omitempty" yaml:"links,omitempty"`
}

// Gallery returns the card's carousel images, falling back to the single cover image.
func (c *Card) Gallery() []string {
	if len(c.Images) > 0 {
		return c.Images
	}
	if c.Image != "" {
		return []string{c.Image}
	}
	return nil
}

// Module is a sub-entry of a lab card.
type Module struct {
	Title    string   `json:"title" yaml:"title"`
	Date     string   `json:"date,omitempty" yaml:"date,omitempty"`
	Bullets  []string `json:"bullets,omitempty" yaml:"bullets,omitempty"`
	Blurb    string   `json:"blurb,omitempty" yaml:"blurb,omitempty"`
	Tools    []string `json:"tools,omitempty" yaml:"tools,omitempty"`
	Images   []string `json:"images,omitempty" yaml:"images,omitempty"`
	ImageAlt string   `json:"image_alt,omitempty" yaml:"image_alt,omitempty"`
}

// Link is an external reference attached to a card.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// CardsOfKind returns the cards of one kind in repository order.
func (r *Repository) CardsOfKind(kind CardKind) []Card {
	var out []Card
	for _, c := range r.Cards {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
