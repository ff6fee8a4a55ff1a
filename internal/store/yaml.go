package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a flat YAML mapping of plugin keys. Scalars keep their
// literal text; sequences and mappings are re-encoded as JSON so that keys
// such as templateMappingsJson can be written as native YAML.
func LoadYAML(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	src, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return src, nil
}

// ParseYAML is LoadYAML over an in-memory document. Null values are treated
// as unset.
func ParseYAML(data []byte) (Source, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Map{}, nil
		}
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at line %d, got %s", root.Line, kindName(root.Kind))
	}

	m := make(Map, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind == yaml.AliasNode {
			value = value.Alias
		}

		switch value.Kind {
		case yaml.ScalarNode:
			if value.Tag == "!!null" {
				continue
			}
			m[key.Value] = value.Value
		case yaml.SequenceNode, yaml.MappingNode:
			var v any
			if err := value.Decode(&v); err != nil {
				return nil, fmt.Errorf("failed to decode %q: %w", key.Value, err)
			}
			encoded, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("failed to encode %q as JSON: %w", key.Value, err)
			}
			m[key.Value] = string(encoded)
		}
	}
	return m, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
