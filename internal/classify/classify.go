// Package classify provides the per-entry predicates that decide domain and audience membership.
package classify

import (
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Domain tags used across the repository.
const (
	DomainDataScience     = "ds"
	DomainComputerScience = "cs"
	DomainMarketing       = "marketing"
	DomainNanofabrication = "nanofab"
)

// domainSets is the fixed focus lookup table. It is not user-editable and is
// not derived from the repository contents.
var domainSets = map[types.DomainFocus][]string{
	types.FocusNanotech:    {DomainNanofabrication},
	types.FocusDataScience: {DomainDataScience, DomainComputerScience, DomainMarketing},
}

// academicTitleKeywords mark an experience entry as academic when found in its title.
var academicTitleKeywords = []string{"assistant", "teaching", "learning", "marker", "grader"}

// DomainUniverse returns every domain tag known to the focus table.
func DomainUniverse() []string {
	return []string{DomainComputerScience, DomainDataScience, DomainMarketing, DomainNanofabrication}
}

// ResolveDomainSet maps a focus toggle to its concrete domain set.
// An unknown focus resolves to the data science set.
func ResolveDomainSet(focus types.DomainFocus) []string {
	set, ok := domainSets[focus]
	if !ok {
		set = domainSets[types.FocusDataScience]
	}
	out := make([]string, len(set))
	copy(out, set)
	return out
}

// DomainMatches reports whether an entry with the given tags belongs to the domain set.
// Entries without tags are global and match every set.
func DomainMatches(tags []string, domains []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		for _, d := range domains {
			if tag == d {
				return true
			}
		}
	}
	return false
}

// EntryMatchesDomains applies DomainMatches to the union of an entry's tag fields.
func EntryMatchesDomains(entry *types.Entry, domains []string) bool {
	return DomainMatches(entry.DomainTags(), domains)
}

// TrackInferrer computes an entry's audience track for a section.
type TrackInferrer func(entry *types.Entry, section types.SectionKind) types.Track

// InferAudienceTrack classifies an entry as academic or industry. An explicit
// track always wins; otherwise the section decides, with a title keyword
// heuristic for experience and the nanofab tag for projects. Checks run in
// order and the first match wins.
func InferAudienceTrack(entry *types.Entry, section types.SectionKind) types.Track {
	if entry.Track != "" {
		return entry.Track
	}

	switch section {
	case types.SectionEducation, types.SectionCoursework, types.SectionResearch, types.SectionLab:
		return types.TrackAcademic
	case types.SectionExperience:
		title := strings.ToLower(entry.Title)
		for _, keyword := range academicTitleKeywords {
			if strings.Contains(title, keyword) {
				return types.TrackAcademic
			}
		}
		return types.TrackIndustry
	case types.SectionProject:
		if entry.HasDomainTag(DomainNanofabrication) {
			return types.TrackAcademic
		}
		return types.TrackIndustry
	default:
		return types.TrackIndustry
	}
}

// TrackMatches reports whether an entry is shown to the requested audience.
func TrackMatches(entry *types.Entry, section types.SectionKind, audience types.Audience) bool {
	return TrackMatchesWith(InferAudienceTrack, entry, section, audience)
}

// TrackMatchesWith is TrackMatches with a caller-supplied inference function.
func TrackMatchesWith(infer TrackInferrer, entry *types.Entry, section types.SectionKind, audience types.Audience) bool {
	if audience == "" || audience == types.AudienceAll {
		return true
	}
	track := infer(entry, section)
	if track == types.TrackBoth {
		return true
	}
	return string(track) == string(audience)
}
