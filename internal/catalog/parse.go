// Package catalog loads the vocabulary data file.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"vocabcards/internal/domain"

	"gopkg.in/yaml.v3"
)

// Format is a catalog encoding
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the encoding from a file name or URL path
func FormatFor(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat decodes raw in the given encoding
func ParseFormat(raw []byte, format Format) (*domain.Catalog, error) {
	if format == FormatYAML {
		return ParseYAML(raw)
	}
	return Parse(raw)
}

// Parse decodes a JSON catalog. A missing or null "sets" yields an empty
// catalog; anything that is not an object with an array "sets" is a
// DataError.
func Parse(raw []byte) (*domain.Catalog, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, dataError("decode", err)
	}
	if root == nil {
		return nil, dataError("decode", fmt.Errorf("payload is not an object"))
	}

	catalog := &domain.Catalog{Sets: []domain.VocabSet{}}

	sets, ok := root["sets"]
	if !ok || bytes.Equal(bytes.TrimSpace(sets), []byte("null")) {
		return catalog, nil
	}
	if err := json.Unmarshal(sets, &catalog.Sets); err != nil {
		return nil, dataError("decode", fmt.Errorf("sets: %w", err))
	}

	normalize(catalog)
	return catalog, nil
}

// ParseYAML decodes the same document shape written as YAML
func ParseYAML(raw []byte) (*domain.Catalog, error) {
	var root map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, dataError("decode", err)
	}
	if root == nil {
		return nil, dataError("decode", fmt.Errorf("payload is not a mapping"))
	}

	catalog := &domain.Catalog{Sets: []domain.VocabSet{}}

	sets, ok := root["sets"]
	if !ok || sets.ShortTag() == "!!null" {
		return catalog, nil
	}
	if sets.Kind != yaml.SequenceNode {
		return nil, dataError("decode", fmt.Errorf("sets: expected a sequence"))
	}
	if err := sets.Decode(&catalog.Sets); err != nil {
		return nil, dataError("decode", fmt.Errorf("sets: %w", err))
	}

	normalize(catalog)
	return catalog, nil
}

// normalize replaces absent item lists so every set has a non-nil slice
func normalize(c *domain.Catalog) {
	if c.Sets == nil {
		c.Sets = []domain.VocabSet{}
	}
	for i := range c.Sets {
		if c.Sets[i].Items == nil {
			c.Sets[i].Items = []domain.VocabItem{}
		}
	}
}
