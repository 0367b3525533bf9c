package knowledge

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/voyago/tripagent/errors"
)

// LoadKnowledgeBaseFromFile reads a YAML knowledge base, structured as
// category -> title -> attributes.
func LoadKnowledgeBaseFromFile(file string) (KnowledgeBase, error) {
	yamlBytes, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %s", file)
	}

	var base KnowledgeBase
	if err := yaml.Unmarshal(yamlBytes, &base); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal file %s", file)
	}

	return base, nil
}
