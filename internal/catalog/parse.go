package catalog

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML builds a resource tree from a nested TOML document. Tables
// become subtrees and string values become leaves. Any non-string,
// non-table value is rejected: malformed catalog data is a load-time
// failure, not something the lookup path has to survive.
func ParseTOML(data []byte) (*Tree, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	root, err := buildNode(raw, "")
	if err != nil {
		return nil, err
	}
	return &Tree{root: root}, nil
}

func buildNode(raw map[string]any, prefix string) (*Node, error) {
	node := &Node{children: make(map[string]*Node, len(raw))}
	for name, value := range raw {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		switch v := value.(type) {
		case string:
			node.children[name] = &Node{leaf: v, isLeaf: true}
		case map[string]any:
			child, err := buildNode(v, path)
			if err != nil {
				return nil, err
			}
			node.children[name] = child
		default:
			return nil, fmt.Errorf("catalog: %s: expected string or table, got %T", path, value)
		}
	}
	return node, nil
}
