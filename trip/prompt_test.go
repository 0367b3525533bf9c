package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voyago/tripagent/knowledge"
)

func TestDigest_Empty(t *testing.T) {
	assert.Equal(t, "", Digest(nil))
	assert.Equal(t, "", Digest([]knowledge.SearchResult{}))
}

func TestDigest_Rendering(t *testing.T) {
	results := []knowledge.SearchResult{
		{
			Record: knowledge.Record{
				Title: "Central Park",
				Attributes: knowledge.Attributes{
					"description": "A vast green oasis.",
					"website":     "www.centralparknyc.org",
					"tips":        []any{"Download a map.", "Rent a bike."},
				},
			},
		},
		{
			Record: knowledge.Record{
				Title: "The Met",
				Attributes: knowledge.Attributes{
					"address": "1000 Fifth Avenue, Manhattan",
				},
			},
		},
	}

	digest := Digest(results)
	assert.Contains(t, digest, "**Central Park**\n")
	assert.Contains(t, digest, "Description: A vast green oasis.\n")
	assert.Contains(t, digest, "Website: www.centralparknyc.org\n")
	assert.Contains(t, digest, "Tips:\nDownload a map.\nRent a bike.\n")
	assert.Contains(t, digest, "**The Met**\n")
	assert.Contains(t, digest, "Description: N/A\n")
	assert.Contains(t, digest, "Address: 1000 Fifth Avenue, Manhattan\n")
	assert.NotContains(t, digest, "Website: \n")
}

func TestSystemPrompt_Parameters(t *testing.T) {
	prompt := systemPrompt(&PlanRequest{
		Budget:            "$10000",
		TransportMode:     "train",
		AccommodationType: "boutique hotel",
	})

	assert.Contains(t, prompt, "The preferred mode of transport is train")
	assert.Contains(t, prompt, "the preferred accommodation type is boutique hotel")
	assert.Contains(t, prompt, "Consider the user's budget: $10000")
	assert.Contains(t, prompt, "Yankee Stadium")
}

func TestUserPrompt_InterpolatesDigest(t *testing.T) {
	req := &PlanRequest{
		StartDate:   "2024-04-10",
		EndDate:     "2024-04-15",
		Preferences: "upscale hotels",
		Interests:   []string{"museums", "Broadway shows"},
	}

	prompt := userPrompt(req, "**Central Park**\n")
	assert.Contains(t, prompt, "from 2024-04-10 to 2024-04-15")
	assert.Contains(t, prompt, "upscale hotels")
	assert.Contains(t, prompt, "museums, Broadway shows")
	assert.Contains(t, prompt, "**Central Park**")
}
