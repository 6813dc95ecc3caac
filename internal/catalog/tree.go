package catalog

import "sort"

// Node is one position in a locale's resource tree: either a leaf
// translation or a subtree of named children, never both.
type Node struct {
	leaf     string
	isLeaf   bool
	children map[string]*Node
}

// Tree holds the resources of a single locale. Immutable after parsing.
type Tree struct {
	root *Node
}

// Resolve walks the dotted path and returns the leaf string at its end.
// A path that ends on a subtree, runs past a leaf, or names an unknown
// child is a plain miss, never an error.
func (t *Tree) Resolve(path []string) (string, bool) {
	if t == nil || t.root == nil || len(path) == 0 {
		return "", false
	}
	node := t.root
	for _, part := range path {
		if node.isLeaf {
			return "", false
		}
		child, ok := node.children[part]
		if !ok {
			return "", false
		}
		node = child
	}
	if !node.isLeaf {
		return "", false
	}
	return node.leaf, true
}

// Keys returns every dotted leaf path in the tree, sorted.
func (t *Tree) Keys() []string {
	if t == nil || t.root == nil {
		return nil
	}
	var keys []string
	var walk func(prefix string, n *Node)
	walk = func(prefix string, n *Node) {
		if n.isLeaf {
			keys = append(keys, prefix)
			return
		}
		for name, child := range n.children {
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}
			walk(path, child)
		}
	}
	walk("", t.root)
	sort.Strings(keys)
	return keys
}
