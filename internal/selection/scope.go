// Package selection turns a repository and document options into the ordered, truncated section content a template renders.
package selection

import (
	"github.com/jonathan/portfolio-cv/internal/classify"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// EffectiveScope resolves the domain set and audience a selection filters by.
// A CV ignores the focus and audience inputs and matches everything.
func EffectiveScope(opts types.Options) types.Scope {
	if opts.IsCV() {
		return types.Scope{
			MatchAllDomains: true,
			Domains:         classify.DomainUniverse(),
			Audience:        types.AudienceAll,
		}
	}

	audience := opts.Audience
	if audience == "" {
		audience = types.AudienceAll
	}
	return types.Scope{
		Domains:  classify.ResolveDomainSet(opts.DomainFocus),
		Audience: audience,
	}
}

// InScope reports whether an entry passes both the domain and the audience filter.
func InScope(scope types.Scope, entry *types.Entry, section types.SectionKind) bool {
	if !scope.MatchAllDomains && !classify.EntryMatchesDomains(entry, scope.Domains) {
		return false
	}
	return classify.TrackMatches(entry, section, scope.Audience)
}

// SectionVisible reports whether a whole section is rendered for the options,
// independently of whether any entry survives filtering.
func SectionVisible(section types.SectionKind, opts types.Options) bool {
	if opts.IsCV() {
		return section != types.SectionCoursework
	}

	switch section {
	case types.SectionEducation, types.SectionSkills, types.SectionProject:
		return true
	case types.SectionCoursework, types.SectionResearch:
		return opts.Audience == types.AudienceAcademic
	case types.SectionLab:
		return opts.Audience == types.AudienceAcademic || opts.DomainFocus == types.FocusNanotech
	case types.SectionExperience:
		return opts.Audience == types.AudienceIndustry
	default:
		return false
	}
}

// Heading returns the section title printed above a section.
func Heading(section types.SectionKind) string {
	switch section {
	case types.SectionEducation:
		return "Education"
	case types.SectionCoursework:
		return "Coursework"
	case types.SectionSkills:
		return "Skills"
	case types.SectionExperience:
		return "Work Experience"
	case types.SectionResearch:
		return "Research"
	case types.SectionLab:
		return "Technical Experience"
	case types.SectionProject:
		return "Projects"
	default:
		return string(section)
	}
}
