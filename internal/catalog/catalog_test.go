package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisible(t *testing.T) {
	repo := testRepository()

	tests := []struct {
		name  string
		state State
		want  []string
	}{
		{
			name:  "everything by default",
			state: InitialState(),
			want:  []string{"Fish Tracker", "True Random Number Generator", "Cleanroom Fabrication", "Campaign Dashboard"},
		},
		{
			name:  "kind category",
			state: State{Category: CategoryLab, Sort: SortRelevance},
			want:  []string{"Cleanroom Fabrication"},
		},
		{
			name:  "domain category",
			state: State{Category: CategoryDS, Sort: SortTitleAsc},
			want:  []string{"Campaign Dashboard", "Fish Tracker"},
		},
		{
			name:  "query narrows the category",
			state: State{Category: CategoryNanofab, Query: "entropy", Sort: SortRelevance},
			want:  []string{"True Random Number Generator"},
		},
		{
			name:  "empty sort treated as relevance",
			state: State{Category: CategoryAll, Query: "python"},
			want:  []string{"Fish Tracker", "True Random Number Generator", "Campaign Dashboard"},
		},
		{
			name:  "no matches",
			state: State{Category: CategoryMarketing, Query: "lithography"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Visible(repo, tt.state)))
		})
	}

	assert.Nil(t, Visible(nil, InitialState()))
}

func TestFind(t *testing.T) {
	repo := testRepository()

	card, ok := Find(repo, "Fish Tracker")
	require.True(t, ok)
	assert.Equal(t, "fish.png", card.Image)

	card.Title = "changed"
	assert.Equal(t, "Fish Tracker", repo.Cards[2].Title)

	_, ok = Find(repo, "Missing")
	assert.False(t, ok)

	_, ok = Find(nil, "Fish Tracker")
	assert.False(t, ok)
}

func TestSlideAltAndCurrentImage(t *testing.T) {
	repo := testRepository()

	fish := &repo.Cards[2]
	assert.Equal(t, "Tracked fish (1/1)", SlideAlt(fish, 0))

	lab := &repo.Cards[1]
	assert.Equal(t, "Cleanroom Fabrication (2/3)", SlideAlt(lab, 1))

	state := Reduce(InitialState(), OpenCard{Card: *lab})
	state = Reduce(state, NextSlide{})
	img, ok := CurrentImage(lab, state.Modal)
	require.True(t, ok)
	assert.Equal(t, "b.png", img)

	_, ok = CurrentImage(lab, Modal{})
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	repo := testRepository()
	summaries := Summarize(Visible(repo, State{Query: "python"}), "python")

	require.Len(t, summaries, 3)
	assert.Equal(t, "Fish Tracker", summaries[0].Title)
	assert.True(t, summaries[0].Featured)
	assert.Equal(t, 22, summaries[0].Score)
	assert.Equal(t, 6, summaries[2].Score)
}
