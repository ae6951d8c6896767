package catalog

import (
	"testing"

	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		value   string
		want    Category
		wantErr bool
	}{
		{value: "", want: CategoryAll},
		{value: "all", want: CategoryAll},
		{value: " Nanofab ", want: CategoryNanofab},
		{value: "lab", want: CategoryLab},
		{value: "biology", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseCategory(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextCategory_Wraps(t *testing.T) {
	c := CategoryAll
	seen := map[Category]bool{}
	for range Categories() {
		seen[c] = true
		c = NextCategory(c)
	}
	assert.Equal(t, CategoryAll, c)
	assert.Len(t, seen, len(Categories()))
	assert.Equal(t, CategoryAll, NextCategory("bogus"))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Nanofabrication", CategoryNanofab.Label())
	assert.Equal(t, "Labs", CategoryLab.Label())
	assert.Equal(t, "custom", Category("custom").Label())
}

func TestMatchesCategory(t *testing.T) {
	card := &types.Card{Entry: types.Entry{Title: "X", Categories: []string{"ds"}}, Kind: types.KindProject}

	assert.True(t, MatchesCategory(card, CategoryAll))
	assert.True(t, MatchesCategory(card, ""))
	assert.True(t, MatchesCategory(card, CategoryProject))
	assert.True(t, MatchesCategory(card, CategoryDS))
	assert.False(t, MatchesCategory(card, CategoryLab))
	assert.False(t, MatchesCategory(card, CategoryNanofab))
}

func TestCategories_ReturnsCopy(t *testing.T) {
	opts := Categories()
	opts[0].Label = "changed"
	assert.Equal(t, "All", Categories()[0].Label)
}
