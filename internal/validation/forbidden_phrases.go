// Package validation inspects rendered portfolio documents and reports constraint violations.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// DefaultForbiddenPhrases are placeholder strings that must never reach a printed document.
var DefaultForbiddenPhrases = []string{
	"lorem ipsum",
	"tbd",
	"placeholder",
	"undefined",
}

// CheckForbiddenPhrases reports items whose text contains a forbidden phrase.
// Matching is case-insensitive; only the first match per item is reported.
func CheckForbiddenPhrases(report *DocumentReport, phrases []string) []types.Violation {
	if len(phrases) == 0 {
		return []types.Violation{}
	}

	var violations []types.Violation
	for _, section := range report.Sections {
		for _, item := range section.Items {
			text := strings.ToLower(item.Text)
			for _, phrase := range phrases {
				normalizedPhrase := strings.ToLower(strings.TrimSpace(phrase))
				if normalizedPhrase == "" {
					continue
				}
				if containsWord(text, normalizedPhrase) {
					violations = append(violations, types.Violation{
						Type:     "forbidden_phrase",
						Severity: "error",
						Details:  fmt.Sprintf("%q in %s contains forbidden phrase: %s", item.Title, section.Kind, phrase),
						Section:  section.Kind,
						Item:     item.Title,
					})
					break
				}
			}
		}
	}
	return violations
}

// containsWord reports whether phrase occurs in text on word boundaries.
func containsWord(text, phrase string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(phrase)
		if (idx == 0 || !isWordByte(text[idx-1])) && (end == len(text) || !isWordByte(text[end])) {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
