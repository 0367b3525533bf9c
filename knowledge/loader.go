package knowledge

import (
	"sort"
)

// Flatten converts a two-level knowledge base into a flat record list.
// Categories and titles are traversed in sorted order so repeated loads of
// the same base produce the same record sequence.
func (kb KnowledgeBase) Flatten() []Record {
	categories := make([]string, 0, len(kb))
	for category := range kb {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var records []Record
	for _, category := range categories {
		entries := kb[category]

		titles := make([]string, 0, len(entries))
		for title := range entries {
			titles = append(titles, title)
		}
		sort.Strings(titles)

		for _, title := range titles {
			records = append(records, Record{
				Title:      title,
				Attributes: entries[title],
			})
		}
	}

	return records
}
