package trip

import (
	"github.com/voyago/tripagent/knowledge"
)

// DefaultKnowledgeBase returns the built-in NYC travel knowledge base used by
// the demo shell when no knowledge file is supplied.
func DefaultKnowledgeBase() knowledge.KnowledgeBase {
	return knowledge.KnowledgeBase{
		"attractions": {
			"Empire State Building": {
				"description": "Iconic skyscraper with observation decks offering stunning views of the city.",
				"address":     "350 Fifth Avenue, Manhattan",
				"website":     "www.esbnyc.com",
				"tips": []string{
					"Purchase tickets online in advance to avoid long lines.",
					"Visit during the day and at night for different perspectives.",
				},
			},
			"Central Park": {
				"description": "A vast green oasis in the heart of Manhattan, perfect for picnics, walks, bike rides, and boating.",
				"activities": []string{
					"visit the Central Park Zoo",
					"rent a rowboat on The Lake",
					"see a performance at the Delacorte Theater",
					"have a picnic on the Great Lawn",
				},
				"tips": []string{
					"Download a map of the park to navigate its many paths and attractions.",
				},
			},
			"The Metropolitan Museum of Art": {
				"description": "One of the world's largest and finest art museums.",
				"address":     "1000 Fifth Avenue, Manhattan",
				"website":     "www.metmuseum.org",
				"tips": []string{
					"Allow ample time to explore the vast collection.",
					"Consider purchasing a guided tour for a more in-depth experience.",
				},
			},
		},
	}
}
