package tree

import (
	"sort"
	"strings"
)

// Node is one segment of a path trie. The implicit root is a Node whose
// children are the top-level segments; it never appears in rendered output.
// A node with children is a directory, one without is a file.
type Node struct {
	children map[string]*Node
}

// NewNode returns an empty trie root.
func NewNode() *Node {
	return &Node{children: map[string]*Node{}}
}

// Insert walks the segments from n, creating missing children. Existing
// siblings are merged, so a leaf that later gains a deeper path becomes a
// directory.
func (n *Node) Insert(segments []string) {
	cur := n
	for _, seg := range segments {
		child, ok := cur.children[seg]
		if !ok {
			child = NewNode()
			cur.children[seg] = child
		}
		cur = child
	}
}

// IsDir reports whether the node has any children.
func (n *Node) IsDir() bool {
	return len(n.children) > 0
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the named child, or nil.
func (n *Node) Child(name string) *Node {
	return n.children[name]
}

// Names returns the child names in lexicographic order.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SplitPath breaks a raw path string into trimmed, non-empty segments.
func SplitPath(path string) []string {
	var segments []string
	for _, part := range strings.Split(strings.TrimSpace(path), "/") {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// Build constructs a fresh trie from raw path strings.
func Build(paths []string) *Node {
	root := NewNode()
	for _, p := range paths {
		if segments := SplitPath(p); len(segments) > 0 {
			root.Insert(segments)
		}
	}
	return root
}
