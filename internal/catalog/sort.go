// Package catalog implements the filterable, sortable card catalog and its view state.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/portfolio-cv/internal/selection"
	"github.com/jonathan/portfolio-cv/internal/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode orders the visible cards.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortDateAsc   SortMode = "date_asc"
	SortDateDesc  SortMode = "date_desc"
	SortTitleAsc  SortMode = "title_asc"
	SortTitleDesc SortMode = "title_desc"
)

var sortModes = []SortMode{SortRelevance, SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc}

type rankedCard struct {
	card  types.Card
	score int
	date  time.Time
}

// SortModes returns the sort modes in menu order.
func SortModes() []SortMode {
	out := make([]SortMode, len(sortModes))
	copy(out, sortModes)
	return out
}

// ParseSortMode parses a sort mode. An empty value means relevance.
func ParseSortMode(value string) (SortMode, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return SortRelevance, nil
	}
	for _, m := range sortModes {
		if string(m) == value {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown sort mode %q", value)
}

// NextSortMode returns the mode after m in menu order, wrapping around.
func NextSortMode(m SortMode) SortMode {
	for i, mode := range sortModes {
		if mode == m {
			return sortModes[(i+1)%len(sortModes)]
		}
	}
	return SortRelevance
}

// Sort returns a sorted copy of cards. Relevance orders by score, then newest
// first, then title; titles compare with English collation. Cards that compare
// equal keep their input order.
func Sort(cards []types.Card, mode SortMode, query string) []types.Card {
	out := make([]types.Card, len(cards))
	copy(out, cards)

	// collators are not safe for concurrent use
	collator := collate.New(language.English, collate.IgnoreCase)
	compareTitles := func(a, b string) int {
		return collator.CompareString(a, b)
	}

	switch mode {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return selection.ParseDate(out[i].Date).Before(selection.ParseDate(out[j].Date))
		})
	case SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return selection.ParseDate(out[i].Date).After(selection.ParseDate(out[j].Date))
		})
	case SortTitleAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return compareTitles(out[i].Title, out[j].Title) < 0
		})
	case SortTitleDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return compareTitles(out[i].Title, out[j].Title) > 0
		})
	case SortRelevance:
		ranked := make([]rankedCard, len(out))
		for i := range out {
			ranked[i] = rankedCard{
				card:  out[i],
				score: RelevanceScore(&out[i], query),
				date:  selection.ParseDate(out[i].Date),
			}
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			a, b := &ranked[i], &ranked[j]
			if a.score != b.score {
				return a.score > b.score
			}
			if !a.date.Equal(b.date) {
				return a.date.After(b.date)
			}
			return compareTitles(a.card.Title, b.card.Title) < 0
		})
		for i := range ranked {
			out[i] = ranked[i].card
		}
	}

	return out
}
