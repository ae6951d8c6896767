// Package content provides functionality to load and normalize portfolio repository files.
package content

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Normalize applies all normalization steps to a freshly decoded repository.
// It runs once at load time; nothing mutates the repository afterwards.
func Normalize(repo *types.Repository) error {
	NormalizeTags(repo)
	TrimBullets(repo)

	if err := ValidateTracks(repo); err != nil {
		return err
	}
	return ValidateCardKinds(repo)
}

// NormalizeTags lower-cases, trims and deduplicates domain tags on every entry and skill category.
func NormalizeTags(repo *types.Repository) {
	for i := range repo.Skills {
		repo.Skills[i].Domains = normalizeTagList(repo.Skills[i].Domains)
	}
	forEachEntry(repo, func(e *types.Entry) {
		e.Domains = normalizeTagList(e.Domains)
		e.Categories = normalizeTagList(e.Categories)
	})
}

// TrimBullets trims whitespace around bullets and drops blank ones.
func TrimBullets(repo *types.Repository) {
	forEachEntry(repo, func(e *types.Entry) {
		e.Bullets = trimList(e.Bullets)
		e.CVBullets = trimList(e.CVBullets)
		e.Blurb = strings.TrimSpace(e.Blurb)
	})
	for i := range repo.Cards {
		for j := range repo.Cards[i].Modules {
			m := &repo.Cards[i].Modules[j]
			m.Bullets = trimList(m.Bullets)
			m.Blurb = strings.TrimSpace(m.Blurb)
		}
	}
}

// ValidateTracks checks explicit audience tracks and lower-cases them.
func ValidateTracks(repo *types.Repository) error {
	var err error
	forEachEntry(repo, func(e *types.Entry) {
		if err != nil || e.Track == "" {
			return
		}
		track := types.Track(strings.ToLower(strings.TrimSpace(string(e.Track))))
		switch track {
		case types.TrackAcademic, types.TrackIndustry, types.TrackBoth:
			e.Track = track
		default:
			err = &NormalizationError{
				Message: fmt.Sprintf("invalid track '%s' on entry '%s'", e.Track, e.Title),
			}
		}
	})
	return err
}

// ValidateCardKinds checks that every card has a known kind.
func ValidateCardKinds(repo *types.Repository) error {
	for _, card := range repo.Cards {
		switch card.Kind {
		case types.KindResearch, types.KindLab, types.KindProject:
		default:
			return &NormalizationError{
				Message: fmt.Sprintf("invalid kind '%s' on card '%s'", card.Kind, card.Title),
			}
		}
	}
	return nil
}

// CoerceDates rewrites numeric "date" values in a decoded document as strings,
// so `date: 2024` in YAML (or a bare year in JSON) reads like "2024".
func CoerceDates(document interface{}) {
	switch v := document.(type) {
	case map[string]interface{}:
		for key, value := range v {
			if key == "date" {
				if s, ok := numericDate(value); ok {
					v[key] = s
					continue
				}
			}
			CoerceDates(value)
		}
	case []interface{}:
		for _, item := range v {
			CoerceDates(item)
		}
	}
}

func numericDate(value interface{}) (string, bool) {
	switch n := value.(type) {
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float64:
		if n != float64(int64(n)) {
			return "", false
		}
		return strconv.FormatInt(int64(n), 10), true
	}
	return "", false
}

func forEachEntry(repo *types.Repository, fn func(*types.Entry)) {
	for _, list := range [][]types.Entry{repo.Education, repo.Coursework, repo.Experience} {
		for i := range list {
			fn(&list[i])
		}
	}
	for i := range repo.Cards {
		fn(&repo.Cards[i].Entry)
	}
}

func normalizeTagList(tags []string) []string {
	if len(tags) == 0 {
		return tags
	}
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{})
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue // Skip empty tags
		}
		if _, exists := seen[tag]; !exists {
			out = append(out, tag)
			seen[tag] = struct{}{}
		}
	}
	return out
}

func trimList(items []string) []string {
	if len(items) == 0 {
		return items
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
