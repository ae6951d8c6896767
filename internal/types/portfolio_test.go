//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_DomainTags(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  []string
	}{
		{name: "no tags", entry: Entry{Title: "x"}, want: nil},
		{name: "domains only", entry: Entry{Domains: []string{"ds"}}, want: []string{"ds"}},
		{name: "categories only", entry: Entry{Categories: []string{"nanofab"}}, want: []string{"nanofab"}},
		{name: "both fields", entry: Entry{Domains: []string{"ds"}, Categories: []string{"cs"}}, want: []string{"ds", "cs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.DomainTags())
		})
	}

	e := Entry{Categories: []string{"nanofab"}}
	assert.True(t, e.HasDomainTag("nanofab"))
	assert.False(t, e.HasDomainTag("ds"))
}

func TestCard_Gallery(t *testing.T) {
	withImages := Card{Image: "cover.png", Images: []string{"a.png", "b.png"}}
	assert.Equal(t, []string{"a.png", "b.png"}, withImages.Gallery())

	coverOnly := Card{Image: "cover.png"}
	assert.Equal(t, []string{"cover.png"}, coverOnly.Gallery())

	none := Card{}
	assert.Empty(t, none.Gallery())
}

func TestCard_UnmarshalPromotesEntryFields(t *testing.T) {
	raw := `{
		"kind": "project",
		"title": "FishTracker App",
		"date": "2025-09-15",
		"categories": ["cs"],
		"tags": ["CS", "App Dev"],
		"cv_bullets": ["Developed offline-first app"],
		"links": [{"label": "Code", "url": "https://github.com/example/fish"}]
	}`

	var card Card
	require.NoError(t, json.Unmarshal([]byte(raw), &card))
	assert.Equal(t, KindProject, card.Kind)
	assert.Equal(t, "FishTracker App", card.Title)
	assert.Equal(t, "2025-09-15", card.Date)
	assert.Equal(t, []string{"cs"}, card.Categories)
	assert.Equal(t, []string{"CS", "App Dev"}, card.Tags)
	assert.Equal(t, []string{"Developed offline-first app"}, card.CVBullets)
	require.Len(t, card.Links, 1)
	assert.Equal(t, "Code", card.Links[0].Label)
}

func TestRepository_CardsOfKind(t *testing.T) {
	repo := &Repository{Cards: []Card{
		{Entry: Entry{Title: "A"}, Kind: KindProject},
		{Entry: Entry{Title: "B"}, Kind: KindResearch},
		{Entry: Entry{Title: "C"}, Kind: KindProject},
	}}

	projects := repo.CardsOfKind(KindProject)
	require.Len(t, projects, 2)
	assert.Equal(t, "A", projects[0].Title)
	assert.Equal(t, "C", projects[1].Title)
	assert.Empty(t, repo.CardsOfKind(KindLab))
}
