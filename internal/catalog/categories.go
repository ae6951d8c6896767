// Package catalog implements the filterable, sortable card catalog and its view state.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Category is a catalog filter: all cards, a card kind, or a domain tag.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryResearch  Category = "research"
	CategoryLab       Category = "lab"
	CategoryProject   Category = "project"
	CategoryDS        Category = "ds"
	CategoryCS        Category = "cs"
	CategoryMarketing Category = "marketing"
	CategoryNanofab   Category = "nanofab"
)

// CategoryOption is a filter button.
type CategoryOption struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
}

var categoryOptions = []CategoryOption{
	{ID: CategoryAll, Label: "All"},
	{ID: CategoryResearch, Label: "Research"},
	{ID: CategoryLab, Label: "Labs"},
	{ID: CategoryProject, Label: "Projects"},
	{ID: CategoryDS, Label: "Data Science"},
	{ID: CategoryCS, Label: "Computer Science"},
	{ID: CategoryMarketing, Label: "Marketing"},
	{ID: CategoryNanofab, Label: "Nanofabrication"},
}

// Categories returns the filter options in display order.
func Categories() []CategoryOption {
	out := make([]CategoryOption, len(categoryOptions))
	copy(out, categoryOptions)
	return out
}

// Label returns the display label of a category.
func (c Category) Label() string {
	for _, opt := range categoryOptions {
		if opt.ID == c {
			return opt.Label
		}
	}
	return string(c)
}

// ParseCategory parses a category id. An empty value means all.
func ParseCategory(value string) (Category, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return CategoryAll, nil
	}
	for _, opt := range categoryOptions {
		if string(opt.ID) == value {
			return opt.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}

// NextCategory returns the category after c in display order, wrapping around.
func NextCategory(c Category) Category {
	for i, opt := range categoryOptions {
		if opt.ID == c {
			return categoryOptions[(i+1)%len(categoryOptions)].ID
		}
	}
	return CategoryAll
}

// MatchesCategory reports whether a card belongs to a category: everything
// matches all, otherwise the card kind or one of its domain tags must equal it.
func MatchesCategory(card *types.Card, category Category) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	if string(card.Kind) == string(category) {
		return true
	}
	return card.HasDomainTag(string(category))
}
