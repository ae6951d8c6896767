// Package catalog implements the filterable, sortable card catalog and its view state.
package catalog

import (
	"fmt"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Modal is the detail view of one card and its image carousel.
type Modal struct {
	Open   bool   `json:"open"`
	Title  string `json:"title,omitempty"`
	Slide  int    `json:"slide"`
	Slides int    `json:"slides"`
}

// Position renders the carousel position as "n/total", or "" without images.
func (m Modal) Position() string {
	if m.Slides == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", m.Slide+1, m.Slides)
}

// State is the complete catalog view state. It is a value: Reduce returns a
// new State and never modifies its input.
type State struct {
	Category Category `json:"category"`
	Query    string   `json:"query"`
	Sort     SortMode `json:"sort"`
	Modal    Modal    `json:"modal"`
}

// InitialState is the state the catalog opens with.
func InitialState() State {
	return State{Category: CategoryAll, Sort: SortRelevance}
}

// Action is a catalog state transition.
type Action interface {
	isAction()
}

// SetCategory switches the category filter. Switching category always resets
// the sort to relevance.
type SetCategory struct{ Category Category }

// SetQuery replaces the search text.
type SetQuery struct{ Query string }

// SetSort replaces the sort mode.
type SetSort struct{ Sort SortMode }

// OpenCard opens the detail view of a card at its first image.
type OpenCard struct{ Card types.Card }

// CloseModal closes the detail view.
type CloseModal struct{}

// NextSlide advances the carousel, wrapping to the first image.
type NextSlide struct{}

// PrevSlide moves the carousel back, wrapping to the last image.
type PrevSlide struct{}

// GotoSlide jumps to an image; out-of-range indexes are clamped.
type GotoSlide struct{ Index int }

func (SetCategory) isAction() {}
func (SetQuery) isAction()    {}
func (SetSort) isAction()     {}
func (OpenCard) isAction()    {}
func (CloseModal) isAction()  {}
func (NextSlide) isAction()   {}
func (PrevSlide) isAction()   {}
func (GotoSlide) isAction()   {}

// Reduce is the single transition function of the catalog view state.
// Unknown actions and carousel moves without an open modal return the state unchanged.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetCategory:
		category := a.Category
		if category == "" {
			category = CategoryAll
		}
		state.Category = category
		state.Sort = SortRelevance
	case SetQuery:
		state.Query = a.Query
	case SetSort:
		if a.Sort != "" {
			state.Sort = a.Sort
		}
	case OpenCard:
		state.Modal = Modal{
			Open:   true,
			Title:  a.Card.Title,
			Slides: len(a.Card.Gallery()),
		}
	case CloseModal:
		state.Modal = Modal{}
	case NextSlide:
		if state.Modal.Open && state.Modal.Slides > 1 {
			state.Modal.Slide = (state.Modal.Slide + 1) % state.Modal.Slides
		}
	case PrevSlide:
		if state.Modal.Open && state.Modal.Slides > 1 {
			state.Modal.Slide = (state.Modal.Slide - 1 + state.Modal.Slides) % state.Modal.Slides
		}
	case GotoSlide:
		if state.Modal.Open && state.Modal.Slides > 0 {
			state.Modal.Slide = max(0, min(a.Index, state.Modal.Slides-1))
		}
	}
	return state
}
