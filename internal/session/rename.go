package session

import "github.com/nikbrunner/filetree/internal/model"

// rename is a staged move of a path and its descendants. The entries are
// detached from the store when the rename begins and reattached under
// either the new name (commit) or the original one (rollback).
type rename struct {
	original string
	exact    int
	children []string
}

func beginRename(store *model.Store, path string) *rename {
	exact, children := store.Detach(path)
	return &rename{original: path, exact: exact, children: children}
}

func (r *rename) commit(store *model.Store, newPath string) {
	r.reattach(store, newPath)
}

func (r *rename) rollback(store *model.Store) {
	r.reattach(store, r.original)
}

func (r *rename) reattach(store *model.Store, base string) {
	for i := 0; i < r.exact; i++ {
		store.Add(base)
	}
	for _, suffix := range r.children {
		store.Add(base + "/" + suffix)
	}
}
