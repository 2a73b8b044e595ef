package keys

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// FromDocument returns the top-level keys of a YAML or JSON document.
// Object keys keep their source order, with array-index keys hoisted to the
// front in numeric order. Repeated keys keep their first position. Arrays
// yield their indices, strings yield one index per UTF-16 code unit and
// other scalars yield no keys. An empty document or
// an explicit null returns ErrNilRecord.
func FromDocument(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, ErrNilRecord
		}
		node = node.Content[0]
	}
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case 0:
		return nil, ErrNilRecord
	case yaml.MappingNode:
		return mappingKeys(node), nil
	case yaml.SequenceNode:
		return indices(len(node.Content)), nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return nil, ErrNilRecord
		case "!!str":
			return indices(utf16Len(node.Value)), nil
		}
	}
	return []string{}, nil
}

func mappingKeys(node *yaml.Node) []string {
	seen := make(map[string]bool, len(node.Content)/2)
	out := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i].Value
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	slices.SortStableFunc(out, compareIndexFirst)
	return out
}
