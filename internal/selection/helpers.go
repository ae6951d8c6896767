// Package selection turns a repository and document options into the ordered, truncated section content a template renders.
package selection

import (
	"strings"
	"time"

	"github.com/jonathan/portfolio-cv/internal/types"
)

const (
	// Unlimited is the bullet cap for sections that show everything.
	Unlimited = 999
	// maxTools is the number of tool labels kept per card
	maxTools = 8
)

// bulletLimits holds the maximum bullet count per section and document type.
var bulletLimits = map[types.SectionKind]map[types.DocumentType]int{
	types.SectionEducation:  {types.DocumentResume: 3, types.DocumentCV: Unlimited},
	types.SectionCoursework: {types.DocumentResume: 10, types.DocumentCV: Unlimited},
	types.SectionExperience: {types.DocumentResume: 3, types.DocumentCV: Unlimited},
	types.SectionResearch:   {types.DocumentResume: 3, types.DocumentCV: Unlimited},
	types.SectionLab:        {types.DocumentResume: 4, types.DocumentCV: Unlimited},
	types.SectionProject:    {types.DocumentResume: 2, types.DocumentCV: 2},
}

// dateLayouts are the ISO-8601 shapes accepted for entry dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// BulletLimit returns the bullet cap for a section in a document type.
func BulletLimit(section types.SectionKind, docType types.DocumentType) int {
	if limits, ok := bulletLimits[section]; ok {
		if limit, ok := limits[docType]; ok {
			return limit
		}
	}
	return Unlimited
}

// ParseDate parses an ISO-8601 date. Missing or unparseable values return the
// zero time so they sort as the oldest entries.
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Truncate returns a copy of at most limit items, preserving order.
func Truncate(items []string, limit int) []string {
	if limit <= 0 || len(items) == 0 {
		return nil
	}
	n := min(len(items), limit)
	out := make([]string, n)
	copy(out, items[:n])
	return out
}

// BulletSource picks the bullets an entry is rendered with: cv_bullets, then
// bullets, then (when modules are given) flattened module bullets, then the
// blurb as a single pseudo-bullet. It returns nil when nothing is available.
func BulletSource(entry *types.Entry, modules []types.Module) []string {
	if len(entry.CVBullets) > 0 {
		return entry.CVBullets
	}
	if len(entry.Bullets) > 0 {
		return entry.Bullets
	}
	if flattened := FlattenModules(modules); len(flattened) > 0 {
		return flattened
	}
	if strings.TrimSpace(entry.Blurb) != "" {
		return []string{entry.Blurb}
	}
	return nil
}

// FlattenModules turns lab modules into bullets prefixed with the module title,
// in module order. A module without bullets contributes its blurb instead.
func FlattenModules(modules []types.Module) []string {
	var out []string
	for _, m := range modules {
		lines := m.Bullets
		if len(lines) == 0 && strings.TrimSpace(m.Blurb) != "" {
			lines = []string{m.Blurb}
		}
		for _, line := range lines {
			if m.Title == "" {
				out = append(out, line)
				continue
			}
			out = append(out, m.Title+": "+line)
		}
	}
	return out
}
