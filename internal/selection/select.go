// Package selection turns a repository and document options into the ordered, truncated section content a template renders.
package selection

import (
	"sort"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/classify"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// sectionOrder is the order sections appear in a Selection.
var sectionOrder = []types.SectionKind{
	types.SectionEducation,
	types.SectionCoursework,
	types.SectionResearch,
	types.SectionLab,
	types.SectionProject,
	types.SectionExperience,
}

// Select runs the selection pipeline: resolve the effective scope, filter every
// section by domain and audience, order cards by recency, drop projects already
// shown as research, and truncate bullets to the section caps.
// The repository is only read.
func Select(repo *types.Repository, opts types.Options) (*types.Selection, error) {
	if repo == nil {
		return nil, &Error{Message: "repository is nil"}
	}

	opts = opts.WithDefaults()
	scope := EffectiveScope(opts)

	sel := &types.Selection{
		Options:  opts,
		Scope:    scope,
		Person:   repo.Person,
		Sections: []types.SelectedSection{},
	}

	if SectionVisible(types.SectionSkills, opts) {
		sel.Skills = selectSkills(repo.Skills, scope)
	} else {
		sel.Hidden = append(sel.Hidden, types.SectionSkills)
	}

	researchTitles := make(map[string]bool)

	for _, kind := range sectionOrder {
		if !SectionVisible(kind, opts) {
			sel.Hidden = append(sel.Hidden, kind)
			continue
		}

		var items []types.SelectedItem
		switch kind {
		case types.SectionEducation:
			items = selectEntries(repo.Education, kind, scope, opts)
		case types.SectionCoursework:
			items = selectEntries(repo.Coursework, kind, scope, opts)
		case types.SectionExperience:
			items = selectEntries(repo.Experience, kind, scope, opts)
		case types.SectionResearch:
			items = selectCards(repo.CardsOfKind(types.KindResearch), kind, scope, opts, nil)
			for _, item := range items {
				researchTitles[item.Title] = true
			}
		case types.SectionLab:
			items = selectCards(repo.CardsOfKind(types.KindLab), kind, scope, opts, nil)
		case types.SectionProject:
			var exclude map[string]bool
			if !opts.IsCV() {
				exclude = researchTitles
			}
			items = selectCards(repo.CardsOfKind(types.KindProject), kind, scope, opts, exclude)
		}

		if len(items) == 0 {
			continue
		}

		sel.Sections = append(sel.Sections, types.SelectedSection{
			Kind:    kind,
			Heading: Heading(kind),
			Limit:   BulletLimit(kind, opts.DocumentType),
			Items:   items,
		})
	}

	return sel, nil
}

// selectSkills filters skill categories by domain. Skill categories carry no audience.
func selectSkills(categories []types.SkillCategory, scope types.Scope) []types.SkillCategory {
	var out []types.SkillCategory
	for _, c := range categories {
		if !scope.MatchAllDomains && !classify.DomainMatches(c.Domains, scope.Domains) {
			continue
		}
		if len(c.Items) == 0 {
			continue
		}
		items := make([]string, len(c.Items))
		copy(items, c.Items)
		out = append(out, types.SkillCategory{Title: c.Title, Domains: c.Domains, Items: items})
	}
	return out
}

// selectEntries filters plain entries, keeping repository order.
func selectEntries(entries []types.Entry, kind types.SectionKind, scope types.Scope, opts types.Options) []types.SelectedItem {
	limit := BulletLimit(kind, opts.DocumentType)

	var items []types.SelectedItem
	for i := range entries {
		entry := &entries[i]
		if !InScope(scope, entry, kind) {
			continue
		}
		items = append(items, types.SelectedItem{
			Title:   entry.Title,
			Meta:    entry.Meta,
			Date:    entry.Date,
			Style:   types.BodyBullets,
			Bullets: Truncate(BulletSource(entry, nil), limit),
		})
	}
	return items
}

// selectCards filters cards, sorts them newest first and shapes their bodies.
// Cards whose title is in exclude are dropped.
func selectCards(cards []types.Card, kind types.SectionKind, scope types.Scope, opts types.Options, exclude map[string]bool) []types.SelectedItem {
	var kept []types.Card
	for i := range cards {
		card := &cards[i]
		if exclude[card.Title] {
			continue
		}
		if !InScope(scope, &card.Entry, kind) {
			continue
		}
		kept = append(kept, *card)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return ParseDate(kept[i].Date).After(ParseDate(kept[j].Date))
	})

	limit := BulletLimit(kind, opts.DocumentType)
	items := make([]types.SelectedItem, 0, len(kept))
	for i := range kept {
		items = append(items, shapeCard(&kept[i], kind, opts, limit))
	}
	return items
}

// shapeCard builds the rendered body of one card. Resume projects use the
// short blurb body; everything else uses truncated bullets.
func shapeCard(card *types.Card, kind types.SectionKind, opts types.Options, limit int) types.SelectedItem {
	item := types.SelectedItem{
		Title: card.Title,
		Meta:  card.Meta,
		Date:  card.Date,
		Style: types.BodyBullets,
		Tools: Truncate(card.Tools, maxTools),
	}

	if kind == types.SectionProject && !opts.IsCV() && strings.TrimSpace(card.Blurb) != "" {
		item.Style = types.BodyBlurb
		item.Blurb = card.Blurb
		return item
	}

	var modules []types.Module
	if kind == types.SectionLab {
		modules = card.Modules
	}
	item.Bullets = Truncate(BulletSource(&card.Entry, modules), limit)
	return item
}
