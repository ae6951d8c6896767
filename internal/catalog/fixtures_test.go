package catalog

import "github.com/jonathan/portfolio-cv/internal/types"

func testRepository() *types.Repository {
	return &types.Repository{
		Person: types.Person{Name: "Test Person"},
		Cards: []types.Card{
			{
				Entry: types.Entry{Title: "True Random Number Generator", Date: "2024-05", Categories: []string{"nanofab"},
					Blurb: "Entropy from thermal noise in memristors", Tools: []string{"Python", "Keithley"}},
				Kind: types.KindResearch,
				Tags: []string{"hardware", "entropy"},
			},
			{
				Entry: types.Entry{Title: "Cleanroom Fabrication", Date: "2023-11", Categories: []string{"nanofab"},
					Blurb: "Photolithography and etching"},
				Kind:   types.KindLab,
				Images: []string{"a.png", "b.png", "c.png"},
			},
			{
				Entry: types.Entry{Title: "Fish Tracker", Date: "2025-02", Categories: []string{"ds", "cs"},
					Blurb: "Computer vision pipeline for tracking fish", Tools: []string{"Python", "OpenCV"}},
				Kind:     types.KindProject,
				Featured: true,
				Image:    "fish.png",
				ImageAlt: "Tracked fish",
				Tags:     []string{"vision"},
			},
			{
				Entry: types.Entry{Title: "Campaign Dashboard", Date: "2022-08", Categories: []string{"marketing", "ds"},
					Blurb: "Weekly reporting for a student campaign"},
				Kind:    types.KindProject,
				Details: "Built with python notebooks",
			},
		},
	}
}

func titles(cards []types.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Title)
	}
	return out
}
