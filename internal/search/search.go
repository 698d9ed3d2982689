package search

import (
	"sort"

	"github.com/nikbrunner/filetree/internal/tree"
	"github.com/sahilm/fuzzy"
)

// Result is a fuzzy match against a rendered row.
type Result struct {
	Row            tree.Row
	Index          int // position in the row sequence
	MatchedIndexes []int
	Score          int
}

// rowPaths implements fuzzy.Source over row full paths.
type rowPaths []tree.Row

func (rp rowPaths) String(i int) string {
	return rp[i].Path
}

func (rp rowPaths) Len() int {
	return len(rp)
}

// FindRows matches query against the full path of every row.
// Returns results sorted by match score (best first).
func FindRows(rows []tree.Row, query string) []Result {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, rowPaths(rows))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Row:            rows[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// BestRow returns the index of the best matching row.
func BestRow(rows []tree.Row, query string) (int, bool) {
	results := FindRows(rows, query)
	if len(results) == 0 {
		return 0, false
	}
	return results[0].Index, true
}

// FilterPaths keeps the raw paths that fuzzy-match query, preserving their
// original order. An empty query keeps everything.
func FilterPaths(paths []string, query string) []string {
	if query == "" {
		return paths
	}

	matches := fuzzy.Find(query, paths)
	indexes := make([]int, len(matches))
	for i, m := range matches {
		indexes[i] = m.Index
	}
	sort.Ints(indexes)

	out := make([]string, len(indexes))
	for i, idx := range indexes {
		out[i] = paths[idx]
	}
	return out
}
