package model

import (
	"strings"

	"github.com/nikbrunner/filetree/internal/tree"
)

// Store holds the raw path entries in insertion order. It is the only
// authoritative state; the trie and rows are rebuilt from it on demand.
type Store struct {
	paths []string
}

// NewStore creates a Store and adds each of the given paths.
func NewStore(paths ...string) *Store {
	s := &Store{paths: []string{}}
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Canonical trims the path and each of its segments and drops empty
// segments. The result is "" when nothing remains.
func Canonical(path string) string {
	return strings.Join(tree.SplitPath(path), "/")
}

// Add appends the canonical form of path. Duplicates are kept. Returns
// false if the path was blank.
func (s *Store) Add(path string) bool {
	p := Canonical(path)
	if p == "" {
		return false
	}
	s.paths = append(s.paths, p)
	return true
}

// RemoveExact removes the first entry equal to path.
func (s *Store) RemoveExact(path string) bool {
	for i, p := range s.paths {
		if p == path {
			s.paths = append(s.paths[:i], s.paths[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSubtree removes every entry equal to path or nested beneath it and
// returns how many were removed.
func (s *Store) RemoveSubtree(path string) int {
	prefix := path + "/"
	kept := s.paths[:0]
	removed := 0
	for _, p := range s.paths {
		if p == path || strings.HasPrefix(p, prefix) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.paths = kept
	return removed
}

// Detach removes path and all of its descendants. It returns the number of
// exact matches removed and the suffixes of the descendants relative to
// path, in store order. Matching is on a "/" boundary, so detaching "ab"
// leaves "abc/x" alone.
func (s *Store) Detach(path string) (exact int, children []string) {
	prefix := path + "/"
	kept := s.paths[:0]
	for _, p := range s.paths {
		switch {
		case p == path:
			exact++
		case strings.HasPrefix(p, prefix):
			children = append(children, p[len(prefix):])
		default:
			kept = append(kept, p)
		}
	}
	s.paths = kept
	return exact, children
}

// Rebuild parses every entry into a fresh trie and renders it.
func (s *Store) Rebuild() (*tree.Node, []tree.Row) {
	root := tree.Build(s.paths)
	return root, tree.Render(root)
}

// Paths returns a copy of the entries in insertion order.
func (s *Store) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.paths)
}
