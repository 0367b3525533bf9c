package knowledge

type (
	// Attributes holds the free-form body of a knowledge record
	// (description, address, website, tips, ...).
	Attributes = map[string]any

	// KnowledgeBase is a two-level mapping of category -> title -> attributes.
	KnowledgeBase map[string]map[string]Attributes

	// Record is a single titled knowledge entry. Immutable once loaded.
	Record struct {
		Title      string     `json:"title" yaml:"title"`
		Attributes Attributes `json:"attributes" yaml:"attributes"`
	}

	// SearchResult pairs a record with its Euclidean distance from the query
	// embedding. Smaller is closer.
	SearchResult struct {
		Record   Record  `json:"record"`
		Distance float64 `json:"distance"`
	}
)

// Description returns the record's description attribute, or "N/A" when the
// record carries none.
func (r Record) Description() string {
	if v, ok := r.Attributes["description"].(string); ok && v != "" {
		return v
	}
	return "N/A"
}

// StringAttr returns a string-typed attribute, or "" if absent.
func (r Record) StringAttr(key string) string {
	v, _ := r.Attributes[key].(string)
	return v
}

// Tips returns the record's tips list, tolerating both []string and []any
// representations (YAML decodes to []any).
func (r Record) Tips() []string {
	switch v := r.Attributes["tips"].(type) {
	case []string:
		return v
	case []any:
		tips := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				tips = append(tips, s)
			}
		}
		return tips
	}
	return nil
}
