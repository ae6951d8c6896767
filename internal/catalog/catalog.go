// Package catalog implements the filterable, sortable card catalog and its view state.
package catalog

import (
	"fmt"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Visible returns the cards matching the state's category and query, in the
// state's sort order.
func Visible(repo *types.Repository, state State) []types.Card {
	if repo == nil {
		return nil
	}

	var matched []types.Card
	for i := range repo.Cards {
		card := &repo.Cards[i]
		if MatchesCategory(card, state.Category) && MatchesQuery(card, state.Query) {
			matched = append(matched, *card)
		}
	}

	mode := state.Sort
	if mode == "" {
		mode = SortRelevance
	}
	return Sort(matched, mode, state.Query)
}

// Find returns the first card with the given title.
func Find(repo *types.Repository, title string) (*types.Card, bool) {
	if repo == nil {
		return nil, false
	}
	for i := range repo.Cards {
		if repo.Cards[i].Title == title {
			card := repo.Cards[i]
			return &card, true
		}
	}
	return nil, false
}

// SlideAlt is the alt text of carousel image i (zero-based) of a card.
func SlideAlt(card *types.Card, i int) string {
	label := card.ImageAlt
	if label == "" {
		label = card.Title
	}
	return fmt.Sprintf("%s (%d/%d)", label, i+1, len(card.Gallery()))
}

// CurrentImage returns the image shown by an open modal.
func CurrentImage(card *types.Card, modal Modal) (string, bool) {
	images := card.Gallery()
	if !modal.Open || len(images) == 0 || modal.Slide < 0 || modal.Slide >= len(images) {
		return "", false
	}
	return images[modal.Slide], true
}

// Summary is the list representation of a card.
type Summary struct {
	Title    string         `json:"title"`
	Kind     types.CardKind `json:"kind"`
	Date     string         `json:"date,omitempty"`
	Featured bool           `json:"featured,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Blurb    string         `json:"blurb,omitempty"`
	Tools    []string       `json:"tools,omitempty"`
	Image    string         `json:"image,omitempty"`
	Links    []types.Link   `json:"links,omitempty"`
	Score    int            `json:"score"`
}

// Summarize builds list entries for cards, scoring each against the query.
func Summarize(cards []types.Card, query string) []Summary {
	out := make([]Summary, 0, len(cards))
	for i := range cards {
		card := &cards[i]
		out = append(out, Summary{
			Title:    card.Title,
			Kind:     card.Kind,
			Date:     card.Date,
			Featured: card.Featured,
			Tags:     card.Tags,
			Blurb:    card.Blurb,
			Tools:    card.Tools,
			Image:    card.Image,
			Links:    card.Links,
			Score:    RelevanceScore(card, query),
		})
	}
	return out
}
