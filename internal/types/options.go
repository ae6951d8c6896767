// Package types provides type definitions for structured data used throughout the portfolio system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// DocumentType selects between the selective two-column resume and the exhaustive CV.
type DocumentType string

const (
	DocumentResume DocumentType = "resume"
	DocumentCV     DocumentType = "cv"
)

// DomainFocus is the two-value topical toggle offered by the document options menu.
type DomainFocus string

const (
	FocusDataScience DomainFocus = "dataScience"
	FocusNanotech    DomainFocus = "nanotech"
)

// Audience is the requested audience of a document.
type Audience string

const (
	AudienceAcademic Audience = "academic"
	AudienceIndustry Audience = "industry"
	AudienceAll      Audience = "all"
)

// Track is the audience classification carried by (or inferred for) an entry.
type Track string

const (
	TrackAcademic Track = "academic"
	TrackIndustry Track = "industry"
	TrackBoth     Track = "both"
)

// SectionKind names a document section; it also drives audience inference.
type SectionKind string

const (
	SectionEducation  SectionKind = "education"
	SectionCoursework SectionKind = "coursework"
	SectionSkills     SectionKind = "skills"
	SectionExperience SectionKind = "experience"
	SectionResearch   SectionKind = "research"
	SectionLab        SectionKind = "lab"
	SectionProject    SectionKind = "project"
)

// Options is the document configuration chosen by the user.
// It is rebuilt on every change of the options menu and never persisted.
type Options struct {
	DocumentType DocumentType `json:"document_type" validate:"required,oneof=resume cv"`
	DomainFocus  DomainFocus  `json:"domain_focus,omitempty" validate:"omitempty,oneof=dataScience nanotech"`
	Audience     Audience     `json:"audience,omitempty" validate:"omitempty,oneof=academic industry all"`
	Locale       string       `json:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
}

// DefaultOptions returns the options the options menu starts with.
func DefaultOptions() Options {
	return Options{
		DocumentType: DocumentResume,
		DomainFocus:  FocusDataScience,
		Audience:     AudienceIndustry,
		Locale:       "en",
	}
}

// Validate validates the Options using the validator.
func (o *Options) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// WithDefaults returns a copy with empty fields filled from DefaultOptions.
// An empty audience means "all" rather than the menu default.
func (o Options) WithDefaults() Options {
	defaults := DefaultOptions()
	if o.DocumentType == "" {
		o.DocumentType = defaults.DocumentType
	}
	if o.DomainFocus == "" {
		o.DomainFocus = defaults.DomainFocus
	}
	if o.Audience == "" {
		o.Audience = AudienceAll
	}
	if o.Locale == "" {
		o.Locale = defaults.Locale
	}
	return o
}

// IsCV reports whether the options request the exhaustive CV.
func (o Options) IsCV() bool {
	return o.DocumentType == DocumentCV
}
