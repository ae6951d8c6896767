// Package catalog implements the filterable, sortable card catalog and its view state.
package catalog

import (
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Relevance weights per token, by the field the token occurs in.
const (
	weightTitle   = 50
	weightTags    = 25
	weightTools   = 22
	weightBlurb   = 12
	weightDetails = 6
	// bonusTitlePhrase is added when the whole query occurs in the title.
	bonusTitlePhrase = 40
)

// Tokenize lower-cases a query and splits it on whitespace.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// MatchesQuery reports whether the trimmed, lower-cased query occurs in the
// card's title, blurb, details, tags, tools or categories. An empty query matches.
func MatchesQuery(card *types.Card, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	parts := []string{card.Title, card.Blurb, card.Details}
	parts = append(parts, card.Tags...)
	parts = append(parts, card.Tools...)
	parts = append(parts, card.DomainTags()...)
	haystack := strings.ToLower(strings.Join(parts, " "))

	return strings.Contains(haystack, q)
}

// RelevanceScore ranks a card against a query. Each token scores by where it
// occurs (title, tags, tools, blurb, details); the whole query inside the title
// earns a bonus. An empty query scores 0.
func RelevanceScore(card *types.Card, query string) int {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return 0
	}

	title := strings.ToLower(card.Title)
	blurb := strings.ToLower(card.Blurb)
	details := strings.ToLower(card.Details)
	tags := strings.ToLower(strings.Join(card.Tags, " "))
	tools := strings.ToLower(strings.Join(card.Tools, " "))

	score := 0
	for _, tok := range tokens {
		if strings.Contains(title, tok) {
			score += weightTitle
		}
		if strings.Contains(tags, tok) {
			score += weightTags
		}
		if strings.Contains(tools, tok) {
			score += weightTools
		}
		if strings.Contains(blurb, tok) {
			score += weightBlurb
		}
		if strings.Contains(details, tok) {
			score += weightDetails
		}
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" && strings.Contains(title, q) {
		score += bonusTitlePhrase
	}

	return score
}
